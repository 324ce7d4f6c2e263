// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-quote-keeper/models"
)

// ClientQuoteService owns the client's insertion-ordered quote list. The list
// lives in memory and every mutation is written through to local storage.
// Mutations are serialized; readers get snapshots.
type ClientQuoteService interface {
	// Load reads the list from local storage. A storage failure or an empty
	// store falls back to [models.DefaultQuotes]; an empty store is seeded
	// with them. Load never fails.
	Load(ctx context.Context)

	// List returns a copy of the current list.
	List() []models.Quote

	// Categories returns the sorted distinct categories of the list.
	Categories() []string

	// Random returns a uniformly chosen quote of category ("" or "all" for
	// any) and records it as the last viewed quote and category as the last
	// filter. Returns [ErrNoQuotes] if nothing matches.
	Random(ctx context.Context, category string) (models.Quote, error)

	// Add validates quote, appends it, persists it and pushes it to the
	// server in the background. Push failures are only logged.
	Add(ctx context.Context, quote models.Quote) error

	// Merge folds remote into the list with [MergeQuotes], persists the whole
	// list and returns the quotes that were appended. Remote quotes that Add
	// would reject are skipped.
	Merge(ctx context.Context, remote []models.Quote) ([]models.Quote, error)

	// Import appends the quotes of a JSON array read from r and returns how
	// many were added. Any problem with the input is reported as
	// [ErrInvalidImport] and leaves the list untouched.
	Import(ctx context.Context, r io.Reader) (int, error)

	// ImportFile is Import for the file at path.
	ImportFile(ctx context.Context, path string) (int, error)

	// Export writes the list to w as an indented JSON array.
	Export(ctx context.Context, w io.Writer) error

	// ExportFile atomically replaces the file at path with the exported list.
	ExportFile(ctx context.Context, path string) error

	// LastViewed returns the quote last returned by Random in this run.
	LastViewed(ctx context.Context) (models.Quote, bool)

	// LastFilter returns the category last passed to Random in this run.
	LastFilter(ctx context.Context) (string, bool)

	// Close waits for background pushes to finish.
	Close()
}

// ClientSyncService pulls the remote list and merges it into the local one.
type ClientSyncService interface {
	// Sync fetches the server's quotes and merges them. Concurrent callers
	// share a single in-flight sync, which keeps running when the caller
	// that started it is cancelled.
	Sync(ctx context.Context) (models.SyncReport, error)
}

// ClientSyncJob is a background worker that calls Sync on a ticker.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Run starts the job with its configured interval.
	Run(ctx context.Context)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Reports delivers the outcome of every background sync. Sends never
	// block; reports nobody reads are dropped.
	Reports() <-chan SyncResult
}

// SyncResult is one finished background sync.
type SyncResult struct {
	Report models.SyncReport
	Err    error
}
