// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// quoteRepository is the PostgreSQL-backed implementation of
// [QuoteRepository] over the "quotes" table.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// database failures are traced together with the request that caused them.
type quoteRepository struct {
	*DB
	logger *logger.Logger
}

// NewQuoteRepository constructs a [QuoteRepository] backed by db.
func NewQuoteRepository(db *DB, logger *logger.Logger) QuoteRepository {
	return &quoteRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *quoteRepository) GetQuotes(ctx context.Context, category string) ([]models.Quote, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectQuotesQuery(category)
	if err != nil {
		log.Err(err).Str("func", "quoteRepository.GetQuotes").Msg("failed to create query")
		return nil, err
	}

	var quotes []models.Quote
	err = r.withRetry(ctx, func() error {
		var queryErr error
		quotes, queryErr = r.queryQuotes(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "quoteRepository.GetQuotes").
			Str("category", category).
			Msg("failed to get quotes")
		return nil, err
	}

	return quotes, nil
}

func (r *quoteRepository) GetRandomQuote(ctx context.Context, category string) (models.Quote, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRandomQuoteQuery(category)
	if err != nil {
		log.Err(err).Str("func", "quoteRepository.GetRandomQuote").Msg("failed to create query")
		return models.Quote{}, err
	}

	var quote models.Quote
	err = r.withRetry(ctx, func() error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(&quote.Text, &quote.Category)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Quote{}, ErrQuoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "quoteRepository.GetRandomQuote").
			Str("category", category).
			Msg("failed to scan random quote")
		return models.Quote{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return quote, nil
}

func (r *quoteRepository) GetCategories(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCategoriesQuery()
	if err != nil {
		log.Err(err).Str("func", "quoteRepository.GetCategories").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "quoteRepository.GetCategories").Msg("failed to execute query for categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]string, 0, 8)
	for rows.Next() {
		var category string
		if scanErr := rows.Scan(&category); scanErr != nil {
			log.Err(scanErr).Str("func", "quoteRepository.GetCategories").Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		categories = append(categories, category)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "quoteRepository.GetCategories").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return categories, nil
}

func (r *quoteRepository) SaveQuote(ctx context.Context, q models.Quote) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertQuoteQuery(q)
	if err != nil {
		log.Err(err).Str("func", "quoteRepository.SaveQuote").Msg("failed to create query")
		return err
	}

	var result sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if IsUniqueViolation(err) {
			return ErrQuoteAlreadyExists
		}
		log.Err(err).
			Str("func", "quoteRepository.SaveQuote").
			Str("category", q.Category).
			Msg("failed to insert quote")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "quoteRepository.SaveQuote").Msg("failed to get rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrQuoteAlreadyExists
	}

	return nil
}

func (r *quoteRepository) queryQuotes(ctx context.Context, query string, args ...any) ([]models.Quote, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	quotes := make([]models.Quote, 0, 50)
	for rows.Next() {
		var q models.Quote
		if err = rows.Scan(&q.Text, &q.Category); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		quotes = append(quotes, q)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return quotes, nil
}
