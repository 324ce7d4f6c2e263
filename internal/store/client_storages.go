// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// QuoteRepository is the SQLite-backed durable quote list.
	QuoteRepository LocalQuoteRepository
	// Session holds the last viewed quote and last filter of this run.
	Session SessionStorage
	// Files imports and exports quote files.
	Files QuoteFileStorage

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. opens the SQLite database at cfg.DB.DSN, creating the file if needed;
//  2. runs pending schema migrations via [DB.Migrate];
//  3. wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		QuoteRepository: NewLocalQuoteRepository(db, logger),
		Session:         NewSessionStorage(),
		Files:           NewQuoteFileStorage(logger),
		db:              db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
