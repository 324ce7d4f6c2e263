// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	if h.cfg.RateLimit > 0 {
		router.Use(h.withRateLimit(h.cfg.RateLimit, h.cfg.RateLimitWindow))
	}
	router.Use(withGZip)

	router.Get("/api/quotes", h.listQuotes)
	router.Post("/api/quotes", h.addQuote)
	router.Get("/api/quotes/random", h.randomQuote)
	router.Get("/api/categories", h.listCategories)
	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
