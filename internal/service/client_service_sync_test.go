// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-quote-keeper/internal/adapter"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/mock"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// spyQuoteService records how many merges overlap. Only Merge and List are
// implemented; the embedded nil interface panics on anything else.
type spyQuoteService struct {
	ClientQuoteService

	mu     sync.Mutex
	quotes []models.Quote

	merges     atomic.Int32
	inMerge    atomic.Int32
	maxInMerge atomic.Int32
}

func (s *spyQuoteService) Merge(_ context.Context, remote []models.Quote) ([]models.Quote, error) {
	s.merges.Add(1)
	n := s.inMerge.Add(1)
	defer s.inMerge.Add(-1)
	for {
		cur := s.maxInMerge.Load()
		if n <= cur || s.maxInMerge.CompareAndSwap(cur, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)

	s.mu.Lock()
	defer s.mu.Unlock()
	merged, added := MergeQuotes(s.quotes, remote)
	s.quotes = merged
	return added, nil
}

func (s *spyQuoteService) List() []models.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Quote(nil), s.quotes...)
}

var syncTestTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSyncSvc(t *testing.T, quotes ClientQuoteService, serverAdapter adapter.ServerAdapter) *clientSyncService {
	t.Helper()
	svc := NewClientSyncService(quotes, serverAdapter, time.Second, logger.Nop()).(*clientSyncService)
	svc.now = func() time.Time { return syncTestTime }
	return svc
}

// ── Sync ─────────────────────────────────────────────────────────────────────

func TestClientSyncService_Sync(t *testing.T) {
	quotes, repo, _ := newTestQuoteSvc(t)
	serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	svc := newTestSyncSvc(t, quotes, serverAdapter)
	ctx := context.Background()

	quotes.quotes = []models.Quote{q("a", "X"), q("b", "Y")}
	remote := []models.Quote{q("b", "Y"), q("c", "Server")}

	serverAdapter.EXPECT().GetQuotes(gomock.Any()).Return(remote, nil)
	repo.EXPECT().ReplaceAll(gomock.Any(), []models.Quote{q("a", "X"), q("b", "Y"), q("c", "Server")}).Return(nil)

	report, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SyncReport{Fetched: 2, Added: 1, Total: 3, At: syncTestTime}, report)
}

func TestClientSyncService_Sync_NothingNewStillPersists(t *testing.T) {
	quotes, repo, _ := newTestQuoteSvc(t)
	serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	svc := newTestSyncSvc(t, quotes, serverAdapter)
	ctx := context.Background()

	quotes.quotes = []models.Quote{q("a", "X")}

	serverAdapter.EXPECT().GetQuotes(gomock.Any()).Return([]models.Quote{q("a", "X")}, nil)
	repo.EXPECT().ReplaceAll(gomock.Any(), []models.Quote{q("a", "X")}).Return(nil)

	report, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Added)
	assert.Equal(t, 1, report.Total)
}

func TestClientSyncService_Sync_AdapterErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"rate limited", fmt.Errorf("%w: slow down", adapter.ErrTooManyRequests), ErrServerRateLimited},
		{"bad request", adapter.ErrBadRequest, ErrServerRejected},
		{"invalid response", fmt.Errorf("%w: not json", adapter.ErrInvalidResponse), ErrServerRejected},
		{"server error", adapter.ErrInternalServerError, ErrServerUnreachable},
		{"network", errors.New("dial tcp: connection refused"), ErrServerUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quotes, _, _ := newTestQuoteSvc(t)
			serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
			svc := newTestSyncSvc(t, quotes, serverAdapter)
			quotes.quotes = []models.Quote{q("a", "X")}

			serverAdapter.EXPECT().GetQuotes(gomock.Any()).Return(nil, tt.err)

			report, err := svc.Sync(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyncFailed)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.err)
			assert.Zero(t, report)
			assert.Equal(t, []models.Quote{q("a", "X")}, quotes.List())
		})
	}
}

func TestClientSyncService_Sync_PersistFailure(t *testing.T) {
	quotes, repo, _ := newTestQuoteSvc(t)
	serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	svc := newTestSyncSvc(t, quotes, serverAdapter)
	ctx := context.Background()

	serverAdapter.EXPECT().GetQuotes(gomock.Any()).Return([]models.Quote{q("a", "X")}, nil)
	repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))

	report, err := svc.Sync(ctx)
	assert.ErrorIs(t, err, ErrSyncFailed)
	assert.ErrorIs(t, err, ErrNotPersisted)
	assert.Equal(t, 1, report.Added)
}

func TestClientSyncService_Sync_ConcurrentCallsShareFlight(t *testing.T) {
	spy := &spyQuoteService{quotes: []models.Quote{q("a", "X")}}
	serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	svc := newTestSyncSvc(t, spy, serverAdapter)

	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	var fetches atomic.Int32
	serverAdapter.EXPECT().GetQuotes(gomock.Any()).
		DoAndReturn(func(context.Context) ([]models.Quote, error) {
			fetches.Add(1)
			select {
			case entered <- struct{}{}:
			default:
			}
			<-release
			return []models.Quote{q("b", "Server")}, nil
		}).
		AnyTimes()

	const callers = 10
	var wg sync.WaitGroup
	reports := make([]models.SyncReport, callers)
	errs := make([]error, callers)

	wg.Add(1)
	go func() {
		defer wg.Done()
		reports[0], errs[0] = svc.Sync(context.Background())
	}()
	<-entered

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reports[i], errs[i] = svc.Sync(context.Background())
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
	}
	assert.Equal(t, int32(1), spy.maxInMerge.Load(), "merges overlapped")
	assert.Less(t, fetches.Load(), int32(callers))
	assert.Equal(t, fetches.Load(), spy.merges.Load())
	assert.Equal(t, 1, reports[0].Added)
	assert.Equal(t, []models.Quote{q("a", "X"), q("b", "Server")}, spy.List())
}

func TestClientSyncService_Sync_CallerCancelDoesNotFailJoiners(t *testing.T) {
	spy := &spyQuoteService{quotes: []models.Quote{q("a", "X")}}
	serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	svc := newTestSyncSvc(t, spy, serverAdapter)

	entered := make(chan struct{})
	release := make(chan struct{})
	serverAdapter.EXPECT().GetQuotes(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]models.Quote, error) {
			close(entered)
			select {
			case <-release:
				return []models.Quote{q("b", "Server")}, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		})

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.Sync(firstCtx)
		firstErr <- err
	}()
	<-entered

	type result struct {
		report models.SyncReport
		err    error
	}
	joined := make(chan result, 1)
	go func() {
		report, err := svc.Sync(context.Background())
		joined <- result{report, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelFirst()
	err := <-firstErr
	assert.ErrorIs(t, err, ErrSyncFailed)
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	res := <-joined
	require.NoError(t, res.err)
	assert.Equal(t, 1, res.report.Added)
	assert.Equal(t, []models.Quote{q("a", "X"), q("b", "Server")}, spy.List())
}

func TestClientSyncService_Sync_FlightTimeout(t *testing.T) {
	quotes, _, _ := newTestQuoteSvc(t)
	serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	svc := newTestSyncSvc(t, quotes, serverAdapter)
	svc.timeout = 20 * time.Millisecond

	serverAdapter.EXPECT().GetQuotes(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]models.Quote, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	_, err := svc.Sync(context.Background())
	assert.ErrorIs(t, err, ErrSyncFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
