// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the quote server.
//
// It wires the chi router, the quote and version handlers, and the middleware
// chain (recovery, trace IDs, access logging, gzip, rate limiting) in front
// of the service layer.
package http
