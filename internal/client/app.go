// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-quote-keeper/internal/adapter"
	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/internal/tui"
	"github.com/MKhiriev/go-quote-keeper/internal/workers"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type App struct {
	run      config.ClientRun
	storages io.Closer
	services *service.ClientServices
	workers  *workers.Workers
	ui       UI
	out      io.Writer
	logger   *logger.Logger
}

// NewApp opens local storage and wires the adapter, services, the sync worker
// and the UI described by cfg.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, cfg, logger)

	return &App{
		run:      cfg.Client,
		storages: storages,
		services: services,
		workers:  workers.NewWorkers(services.SyncJob),
		ui:       tui.New(services, buildInfo, logger),
		out:      os.Stdout,
		logger:   logger,
	}, nil
}

// Run loads the quote list and executes the configured mode.
func (a *App) Run(ctx context.Context) error {
	quotes := a.services.QuoteService
	quotes.Load(ctx)
	defer quotes.Close()

	a.logger.Info().Str("mode", a.run.Mode).Int("quotes", len(quotes.List())).Msg("client started")

	switch a.run.Mode {
	case config.ModeRandom:
		return a.printRandom(ctx)
	case config.ModeSync:
		return a.syncOnce(ctx)
	case config.ModeImport:
		return a.importFile(ctx)
	case config.ModeExport:
		return a.exportFile(ctx)
	default:
		return a.runInteractive(ctx)
	}
}

func (a *App) runInteractive(ctx context.Context) error {
	a.workers.Run(ctx)
	defer a.workers.Stop()

	return a.ui.Run(ctx)
}

func (a *App) printRandom(ctx context.Context) error {
	quote, err := a.services.QuoteService.Random(ctx, a.run.Category)
	if err != nil {
		return fmt.Errorf("pick quote: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "%s\n  - %s\n", quote.Text, quote.Category)
	return err
}

func (a *App) syncOnce(ctx context.Context) error {
	report, err := a.services.SyncService.Sync(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "fetched %d, added %d, total %d\n", report.Fetched, report.Added, report.Total)
	return err
}

func (a *App) importFile(ctx context.Context) error {
	n, err := a.services.QuoteService.ImportFile(ctx, a.run.File)
	if err != nil {
		return fmt.Errorf("import %s: %w", a.run.File, err)
	}

	_, err = fmt.Fprintf(a.out, "imported %d quote(s) from %s\n", n, a.run.File)
	return err
}

func (a *App) exportFile(ctx context.Context) error {
	if err := a.services.QuoteService.ExportFile(ctx, a.run.File); err != nil {
		return fmt.Errorf("export %s: %w", a.run.File, err)
	}

	_, err := fmt.Fprintf(a.out, "exported %d quote(s) to %s\n", len(a.services.QuoteService.List()), a.run.File)
	return err
}

// Close releases local storage.
func (a *App) Close() error {
	if a.storages == nil {
		return nil
	}
	return a.storages.Close()
}
