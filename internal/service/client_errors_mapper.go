// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-quote-keeper/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error while keeping the original in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrTooManyRequests):
		return fmt.Errorf("%w: %w", ErrServerRateLimited, err)
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrConflict),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrInvalidResponse):
		return fmt.Errorf("%w: %w", ErrServerRejected, err)
	default:
		return fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}
}
