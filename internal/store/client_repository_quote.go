// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type localQuoteRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalQuoteRepository constructs the SQLite-backed [LocalQuoteRepository].
func NewLocalQuoteRepository(db *DB, logger *logger.Logger) LocalQuoteRepository {
	return &localQuoteRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localQuoteRepository) GetAll(ctx context.Context) ([]models.Quote, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllLocalQuotes)
	if err != nil {
		log.Err(err).Str("func", "localQuoteRepository.GetAll").Msg("failed to execute query for getting all quotes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var quotes []models.Quote
	for rows.Next() {
		var q models.Quote
		if scanErr := rows.Scan(&q.Text, &q.Category); scanErr != nil {
			log.Err(scanErr).Str("func", "localQuoteRepository.GetAll").Msg("failed to scan quote row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		quotes = append(quotes, q)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "localQuoteRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return quotes, nil
}

func (l *localQuoteRepository) ReplaceAll(ctx context.Context, quotes []models.Quote) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localQuoteRepository.ReplaceAll").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, deleteAllLocalQuotes); err != nil {
		log.Err(err).Str("func", "localQuoteRepository.ReplaceAll").Msg("failed to clear quotes")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = insertQuotes(ctx, tx, quotes); err != nil {
		log.Err(err).
			Str("func", "localQuoteRepository.ReplaceAll").
			Int("count", len(quotes)).
			Msg("failed to insert quotes")
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localQuoteRepository.ReplaceAll").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localQuoteRepository) Append(ctx context.Context, quotes ...models.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localQuoteRepository.Append").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	if err = insertQuotes(ctx, tx, quotes); err != nil {
		log.Err(err).
			Str("func", "localQuoteRepository.Append").
			Int("count", len(quotes)).
			Msg("failed to insert quotes")
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localQuoteRepository.Append").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func insertQuotes(ctx context.Context, tx *sql.Tx, quotes []models.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, insertLocalQuote)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for _, q := range quotes {
		if _, err = stmt.ExecContext(ctx, q.Text, q.Category); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}
