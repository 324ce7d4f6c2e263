// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-quote-keeper/internal/adapter"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/models"
)

const syncFlightKey = "sync"

type clientSyncService struct {
	quotes  ClientQuoteService
	adapter adapter.ServerAdapter

	flight  singleflight.Group
	timeout time.Duration
	now     func() time.Time

	logger *logger.Logger
}

// NewClientSyncService builds a [ClientSyncService] merging the server list
// into quotes. timeout bounds one shared sync; zero leaves it unbounded.
func NewClientSyncService(quotes ClientQuoteService, serverAdapter adapter.ServerAdapter, timeout time.Duration, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		quotes:  quotes,
		adapter: serverAdapter,
		timeout: timeout,
		now:     time.Now,
		logger:  logger.WithComponent("sync"),
	}
}

// Sync runs the shared flight detached from the caller's cancellation so a
// caller that gives up does not fail the others joined to it. Each caller
// still stops waiting when its own ctx is done.
func (s *clientSyncService) Sync(ctx context.Context) (models.SyncReport, error) {
	flightCtx := context.WithoutCancel(ctx)
	results := s.flight.DoChan(syncFlightKey, func() (any, error) {
		runCtx := flightCtx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(flightCtx, s.timeout)
			defer cancel()
		}
		return s.sync(runCtx)
	})

	select {
	case <-ctx.Done():
		return models.SyncReport{}, fmt.Errorf("%w: %w", ErrSyncFailed, ctx.Err())
	case res := <-results:
		if res.Shared {
			s.logger.Debug().Msg("joined in-flight sync")
		}
		report, _ := res.Val.(models.SyncReport)
		return report, res.Err
	}
}

func (s *clientSyncService) sync(ctx context.Context) (models.SyncReport, error) {
	remote, err := s.adapter.GetQuotes(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to fetch remote quotes")
		return models.SyncReport{}, fmt.Errorf("%w: %w", ErrSyncFailed, mapAdapterError(err))
	}

	added, err := s.quotes.Merge(ctx, remote)
	report := models.SyncReport{
		Fetched: len(remote),
		Added:   len(added),
		Total:   len(s.quotes.List()),
		At:      s.now(),
	}
	if err != nil {
		return report, fmt.Errorf("%w: %w", ErrSyncFailed, err)
	}

	s.logger.Info().
		Int("fetched", report.Fetched).
		Int("added", report.Added).
		Int("total", report.Total).
		Msg("sync finished")

	return report, nil
}
