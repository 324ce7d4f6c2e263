// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-quote-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// QuoteRepository is the server-side quote table.
type QuoteRepository interface {
	// GetQuotes returns stored quotes in insertion order. A non-empty
	// category other than "all" narrows the result.
	GetQuotes(ctx context.Context, category string) ([]models.Quote, error)
	// GetRandomQuote returns one random quote, [ErrQuoteNotFound] if none match.
	GetRandomQuote(ctx context.Context, category string) (models.Quote, error)
	// GetCategories returns distinct categories sorted alphabetically.
	GetCategories(ctx context.Context) ([]string, error)
	// SaveQuote stores q, [ErrQuoteAlreadyExists] if the pair is present.
	SaveQuote(ctx context.Context, q models.Quote) error
}
