// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-quote-keeper/internal/app"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
	"github.com/MKhiriev/go-quote-keeper/models"
)

const (
	categoryQueryParam = "category"
	maxQuoteBodyBytes  = 64 << 10
)

func (h *Handler) listQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.services.QuoteService.List(r.Context(), r.URL.Query().Get(categoryQueryParam))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if quotes == nil {
		quotes = []models.Quote{}
	}

	h.writeJSON(w, r, models.QuotesResponse{Quotes: quotes, Length: len(quotes)}, http.StatusOK)
}

func (h *Handler) addQuote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var quote models.Quote
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxQuoteBodyBytes)).Decode(&quote); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	quote = quote.Normalize()
	created, err := h.services.QuoteService.Add(r.Context(), quote)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.writeJSON(w, r, quote, status)
}

func (h *Handler) randomQuote(w http.ResponseWriter, r *http.Request) {
	quote, err := h.services.QuoteService.Random(r.Context(), r.URL.Query().Get(categoryQueryParam))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, quote, http.StatusOK)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.QuoteService.Categories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}

	h.writeJSON(w, r, models.CategoriesResponse{Categories: categories, Length: len(categories)}, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}
