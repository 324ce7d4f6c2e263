// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-quote-keeper/models"
)

// QuoteService is the server-side quote catalogue.
type QuoteService interface {
	// List returns quotes in insertion order, optionally narrowed to category.
	List(ctx context.Context, category string) ([]models.Quote, error)
	// Add stores quote. created is false when the pair was already stored.
	Add(ctx context.Context, quote models.Quote) (created bool, err error)
	// Random returns a random quote of category, [ErrNoQuotes] if none.
	Random(ctx context.Context, category string) (models.Quote, error)
	// Categories returns the sorted distinct categories.
	Categories(ctx context.Context) ([]string, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// QuoteServiceWrapper defines middleware composition for QuoteService.
// Implementations wrap an existing QuoteService to add behavior such as
// validation.
type QuoteServiceWrapper interface {
	Wrap(QuoteService) QuoteService
}
