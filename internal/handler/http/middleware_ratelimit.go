// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"

	"github.com/MKhiriev/go-quote-keeper/internal/app"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
)

// withRateLimit allows limit requests per window for each client IP using a
// sliding window counter. Requests over the limit get 429 with Retry-After.
func (h *Handler) withRateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	if window <= 0 {
		window = time.Minute
	}

	return httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.FromRequest(r).Warn().Str("remote_addr", r.RemoteAddr).Msg("rate limit exceeded")

			w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
			http.Error(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
		}),
	)
}
