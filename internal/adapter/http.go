// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
	"github.com/MKhiriev/go-quote-keeper/internal/validators"
	"github.com/MKhiriev/go-quote-keeper/models"
)

const (
	quotesPath  = "/api/quotes"
	versionPath = "/api/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:   baseURL,
		Timeout:   adapterCfg.RequestTimeout,
		UserAgent: "go-quote-keeper/" + appCfg.Version,
	})

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetQuotes implements [ServerAdapter]. It GETs /api/quotes and decodes the
// [models.QuotesResponse] envelope.
func (h *httpServerAdapter) GetQuotes(ctx context.Context) ([]models.Quote, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(quotesPath)
	if err != nil {
		return nil, fmt.Errorf("get quotes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var qr models.QuotesResponse
	if err = json.Unmarshal(resp.Body(), &qr); err != nil {
		return nil, fmt.Errorf("%w: decode quotes: %w", ErrInvalidResponse, err)
	}

	quotes := sanitizeRemoteQuotes(ctx, qr.Quotes)
	if dropped := len(qr.Quotes) - len(quotes); dropped > 0 {
		h.logger.Warn().Int("dropped", dropped).Msg("invalid remote quotes were dropped")
	}

	return quotes, nil
}

// PostQuote implements [ServerAdapter]. It POSTs the quote to /api/quotes.
// Both 201 (created) and 200 (already present) are success.
func (h *httpServerAdapter) PostQuote(ctx context.Context, quote models.Quote) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(quote).
		Post(quotesPath)
	if err != nil {
		return fmt.Errorf("post quote request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetVersion implements [ServerAdapter].
func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// sanitizeRemoteQuotes normalises the server list and drops entries the
// local validator would reject. A missing category becomes
// [models.RemoteCategory].
func sanitizeRemoteQuotes(ctx context.Context, remote []models.Quote) []models.Quote {
	validator := validators.NewQuoteValidator()
	quotes := make([]models.Quote, 0, len(remote))
	for _, q := range remote {
		q = q.Normalize()
		if q.Category == "" {
			q.Category = models.RemoteCategory
		}
		if err := validator.Validate(ctx, q); err != nil {
			continue
		}
		quotes = append(quotes, q)
	}

	return quotes
}
