// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-quote-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalQuoteRepository is the durable client quote list.
type LocalQuoteRepository interface {
	// GetAll returns every stored quote in insertion order.
	GetAll(ctx context.Context) ([]models.Quote, error)
	// ReplaceAll overwrites the stored list with quotes in one transaction.
	ReplaceAll(ctx context.Context, quotes []models.Quote) error
	// Append adds quotes to the end of the stored list.
	Append(ctx context.Context, quotes ...models.Quote) error
}

// SessionKey names a per-run scalar held by [SessionStorage].
type SessionKey string

const (
	SessionLastViewed SessionKey = "last_viewed_quote"
	SessionLastFilter SessionKey = "last_filter"
)

// SessionStorage holds values that live as long as the client process.
type SessionStorage interface {
	Set(ctx context.Context, key SessionKey, value string)
	Get(ctx context.Context, key SessionKey) (string, bool)
}

// QuoteFileStorage reads and writes quote files on the local filesystem.
type QuoteFileStorage interface {
	// Open opens the file at path for reading.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// WriteAtomic replaces the file at path with whatever write produces.
	// A failed write leaves the previous file intact.
	WriteAtomic(ctx context.Context, path string, write func(io.Writer) error) error
}
