// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrNoQuotes is returned when no quote matches the requested category.
	ErrNoQuotes = errors.New("no quotes available")

	// ErrInvalidQuote wraps validation failures of a single quote.
	ErrInvalidQuote = errors.New("invalid quote")

	// ErrInvalidImport wraps every reason an import file is rejected:
	// empty input, malformed JSON, an empty array or an invalid record.
	ErrInvalidImport = errors.New("invalid import file")

	// ErrNotPersisted is returned when the in-memory list changed but the
	// durable store could not be updated.
	ErrNotPersisted = errors.New("quotes were not persisted")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Sync errors, mapped from adapter failures.
var (
	ErrSyncFailed        = errors.New("sync failed")
	ErrServerUnreachable = errors.New("quote server is unreachable")
	ErrServerRateLimited = errors.New("quote server rate limit exceeded")
	ErrServerRejected    = errors.New("quote server rejected the request")
)
