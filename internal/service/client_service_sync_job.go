// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
)

// DefaultSyncInterval is used when the job is started with a non-positive
// interval.
const DefaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	syncService ClientSyncService
	interval    time.Duration
	reports     chan SyncResult

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.Sync on a
// ticker. The job is idle until Start or Run is called.
func NewClientSyncJob(syncService ClientSyncService, interval time.Duration, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		syncService: syncService,
		interval:    interval,
		reports:     make(chan SyncResult, 1),
		logger:      logger.WithComponent("sync-job"),
	}
}

// Run implements workers.Worker.
func (j *clientSyncJob) Run(ctx context.Context) {
	j.Start(ctx, j.interval)
}

// Start implements ClientSyncJob. The goroutine exits when ctx is cancelled
// or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Dur("interval", interval).Msg("sync job started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *clientSyncJob) tick(ctx context.Context) {
	report, err := j.syncService.Sync(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		j.logger.Warn().Err(err).Msg("scheduled sync failed, will retry on next tick")
	}

	select {
	case j.reports <- SyncResult{Report: report, Err: err}:
	default:
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientSyncJob) Reports() <-chan SyncResult {
	return j.reports
}
