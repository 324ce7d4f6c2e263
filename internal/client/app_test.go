// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/workers"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type stubQuoteService struct {
	service.ClientQuoteService

	quotes    []models.Quote
	loaded    bool
	closed    bool
	category  string
	randomErr error
	importN   int
	importErr error
	exportErr error
	path      string
}

func (s *stubQuoteService) Load(context.Context) { s.loaded = true }
func (s *stubQuoteService) Close()               { s.closed = true }
func (s *stubQuoteService) List() []models.Quote { return s.quotes }

func (s *stubQuoteService) Random(_ context.Context, category string) (models.Quote, error) {
	s.category = category
	if s.randomErr != nil {
		return models.Quote{}, s.randomErr
	}
	return s.quotes[0], nil
}

func (s *stubQuoteService) ImportFile(_ context.Context, path string) (int, error) {
	s.path = path
	return s.importN, s.importErr
}

func (s *stubQuoteService) ExportFile(_ context.Context, path string) error {
	s.path = path
	return s.exportErr
}

type stubSyncService struct {
	report models.SyncReport
	err    error
}

func (s *stubSyncService) Sync(context.Context) (models.SyncReport, error) { return s.report, s.err }

type stubWorker struct {
	events *[]string
}

func (w stubWorker) Run(context.Context) { *w.events = append(*w.events, "worker run") }
func (w stubWorker) Stop()               { *w.events = append(*w.events, "worker stop") }

type stubUI struct {
	events *[]string
	err    error
}

func (u stubUI) Run(context.Context) error {
	*u.events = append(*u.events, "ui run")
	return u.err
}

func newTestApp(run config.ClientRun, quotes *stubQuoteService, syncer *stubSyncService) (*App, *bytes.Buffer, *[]string) {
	var (
		out    bytes.Buffer
		events []string
	)
	return &App{
		run:      run,
		services: &service.ClientServices{QuoteService: quotes, SyncService: syncer},
		workers:  workers.NewWorkers(stubWorker{events: &events}),
		ui:       stubUI{events: &events},
		out:      &out,
		logger:   logger.Nop(),
	}, &out, &events
}

var appQuotes = []models.Quote{{Text: "Stay hungry", Category: "Life"}}

func TestApp_RunRandom(t *testing.T) {
	quotes := &stubQuoteService{quotes: appQuotes}
	app, out, events := newTestApp(config.ClientRun{Mode: config.ModeRandom, Category: "Life"}, quotes, &stubSyncService{})

	require.NoError(t, app.Run(context.Background()))

	assert.True(t, quotes.loaded)
	assert.True(t, quotes.closed)
	assert.Equal(t, "Life", quotes.category)
	assert.Equal(t, "Stay hungry\n  - Life\n", out.String())
	assert.Empty(t, *events, "one-shot modes start neither workers nor ui")
}

func TestApp_RunRandomNoQuotes(t *testing.T) {
	quotes := &stubQuoteService{randomErr: service.ErrNoQuotes}
	app, _, _ := newTestApp(config.ClientRun{Mode: config.ModeRandom, Category: "Art"}, quotes, &stubSyncService{})

	err := app.Run(context.Background())

	assert.ErrorIs(t, err, service.ErrNoQuotes)
	assert.True(t, quotes.closed)
}

func TestApp_RunSync(t *testing.T) {
	syncer := &stubSyncService{report: models.SyncReport{Fetched: 5, Added: 2, Total: 7, At: time.Now()}}
	app, out, _ := newTestApp(config.ClientRun{Mode: config.ModeSync}, &stubQuoteService{}, syncer)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "fetched 5, added 2, total 7\n", out.String())
}

func TestApp_RunSyncFailure(t *testing.T) {
	syncer := &stubSyncService{err: errors.Join(service.ErrSyncFailed, service.ErrServerUnreachable)}
	app, out, _ := newTestApp(config.ClientRun{Mode: config.ModeSync}, &stubQuoteService{}, syncer)

	err := app.Run(context.Background())

	assert.ErrorIs(t, err, service.ErrServerUnreachable)
	assert.Empty(t, out.String())
}

func TestApp_RunImport(t *testing.T) {
	quotes := &stubQuoteService{importN: 3}
	app, out, _ := newTestApp(config.ClientRun{Mode: config.ModeImport, File: "in.json"}, quotes, &stubSyncService{})

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "in.json", quotes.path)
	assert.Equal(t, "imported 3 quote(s) from in.json\n", out.String())
}

func TestApp_RunImportInvalid(t *testing.T) {
	quotes := &stubQuoteService{importErr: service.ErrInvalidImport}
	app, _, _ := newTestApp(config.ClientRun{Mode: config.ModeImport, File: "bad.json"}, quotes, &stubSyncService{})

	err := app.Run(context.Background())

	assert.ErrorIs(t, err, service.ErrInvalidImport)
	assert.Contains(t, err.Error(), "bad.json")
}

func TestApp_RunExport(t *testing.T) {
	quotes := &stubQuoteService{quotes: appQuotes}
	app, out, _ := newTestApp(config.ClientRun{Mode: config.ModeExport, File: "out.json"}, quotes, &stubSyncService{})

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "out.json", quotes.path)
	assert.Equal(t, "exported 1 quote(s) to out.json\n", out.String())
}

func TestApp_RunExportFailure(t *testing.T) {
	quotes := &stubQuoteService{exportErr: service.ErrNotPersisted}
	app, _, _ := newTestApp(config.ClientRun{Mode: config.ModeExport, File: "out.json"}, quotes, &stubSyncService{})

	assert.ErrorIs(t, app.Run(context.Background()), service.ErrNotPersisted)
}

func TestApp_RunInteractive(t *testing.T) {
	quotes := &stubQuoteService{quotes: appQuotes}
	app, _, events := newTestApp(config.ClientRun{Mode: config.ModeTUI}, quotes, &stubSyncService{})

	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, []string{"worker run", "ui run", "worker stop"}, *events)
	assert.True(t, quotes.closed)
}

func TestApp_RunInteractiveUIError(t *testing.T) {
	app, _, events := newTestApp(config.ClientRun{Mode: config.ModeTUI}, &stubQuoteService{}, &stubSyncService{})
	uiErr := errors.New("no terminal")
	app.ui = stubUI{events: events, err: uiErr}

	assert.ErrorIs(t, app.Run(context.Background()), uiErr)
	assert.Equal(t, "worker stop", (*events)[len(*events)-1], "workers are stopped on ui failure")
}

func TestApp_CloseWithoutStorages(t *testing.T) {
	app, _, _ := newTestApp(config.ClientRun{Mode: config.ModeTUI}, &stubQuoteService{}, &stubSyncService{})

	assert.NoError(t, app.Close())
}
