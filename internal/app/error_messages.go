// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// quote server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as a quote.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidQuote is returned when a decoded quote fails validation
	// (blank text or category, or an oversized field).
	MsgInvalidQuote = "invalid quote: text and category are required"

	// MsgNoQuotesFound is returned when no stored quote matches the
	// requested category.
	MsgNoQuotesFound = "no quotes found"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests, please retry later"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
