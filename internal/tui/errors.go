// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-quote-keeper/internal/service"
)

// humanizeError turns service errors into a one-line notice.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrServerUnreachable):
		return "Sync failed: quote server is unreachable"
	case errors.Is(err, service.ErrServerRateLimited):
		return "Sync failed: server is busy, try again later"
	case errors.Is(err, service.ErrServerRejected):
		return "Sync failed: server sent an unexpected response"
	case errors.Is(err, service.ErrNotPersisted):
		return "Kept in memory only: could not write local storage"
	case errors.Is(err, service.ErrInvalidQuote):
		return "Text and category are required"
	case errors.Is(err, service.ErrNoQuotes):
		return "No quotes in this category"
	default:
		return err.Error()
	}
}
