// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type quoteService struct {
	repo   store.QuoteRepository
	logger *logger.Logger
}

// NewQuoteService builds the server [QuoteService] over repo.
func NewQuoteService(repo store.QuoteRepository, logger *logger.Logger) QuoteService {
	return &quoteService{repo: repo, logger: logger}
}

func (s *quoteService) List(ctx context.Context, category string) ([]models.Quote, error) {
	quotes, err := s.repo.GetQuotes(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return quotes, nil
}

func (s *quoteService) Add(ctx context.Context, quote models.Quote) (bool, error) {
	err := s.repo.SaveQuote(ctx, quote.Normalize())
	if errors.Is(err, store.ErrQuoteAlreadyExists) {
		logger.FromContext(ctx).Debug().Str("category", quote.Category).Msg("quote already stored")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("add quote: %w", err)
	}
	return true, nil
}

func (s *quoteService) Random(ctx context.Context, category string) (models.Quote, error) {
	quote, err := s.repo.GetRandomQuote(ctx, category)
	if errors.Is(err, store.ErrQuoteNotFound) {
		return models.Quote{}, ErrNoQuotes
	}
	if err != nil {
		return models.Quote{}, fmt.Errorf("random quote: %w", err)
	}
	return quote, nil
}

func (s *quoteService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
