// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/renameio/v2"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
)

const quoteFilePerm = 0o644

type quoteFileStorage struct {
	logger *logger.Logger
}

// NewQuoteFileStorage constructs the filesystem [QuoteFileStorage].
func NewQuoteFileStorage(logger *logger.Logger) QuoteFileStorage {
	return &quoteFileStorage{logger: logger}
}

func (s *quoteFileStorage) Open(_ context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpeningQuoteFile, err)
	}
	return f, nil
}

func (s *quoteFileStorage) WriteAtomic(ctx context.Context, path string, write func(io.Writer) error) error {
	log := logger.FromContext(ctx)

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(quoteFilePerm))
	if err != nil {
		return fmt.Errorf("%w: create pending file: %w", ErrWritingQuoteFile, err)
	}
	defer func() {
		if cleanupErr := pendingFile.Cleanup(); cleanupErr != nil {
			log.Debug().Err(cleanupErr).Str("path", path).Msg("cleanup pending quote file")
		}
	}()

	if err = write(pendingFile); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingQuoteFile, err)
	}

	if err = pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("%w: atomically replace: %w", ErrWritingQuoteFile, err)
	}

	s.logger.Debug().Str("path", path).Msg("quote file written")

	return nil
}
