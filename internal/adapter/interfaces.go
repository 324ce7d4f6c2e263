// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the quote keeper
// client and the remote quote server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrTooManyRequests]
// for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-quote-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the remote quote server.
type ServerAdapter interface {
	// GetQuotes fetches the full remote quote list. Records without text are
	// dropped; records without a category get [models.RemoteCategory].
	GetQuotes(ctx context.Context) ([]models.Quote, error)

	// PostQuote sends a single quote to the server. A quote the server
	// already has is not an error.
	PostQuote(ctx context.Context, quote models.Quote) error

	// GetVersion returns the server's build version.
	GetVersion(ctx context.Context) (string, error)
}
