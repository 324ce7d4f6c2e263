// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultRetryCount   = 2
	defaultRetryWait    = 200 * time.Millisecond
	defaultRetryMaxWait = 2 * time.Second
)

// HTTPClientOptions configures [NewHTTPClient].
type HTTPClientOptions struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// RetryCount overrides the number of retries; negative disables them.
	RetryCount int
}

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{BaseURL: "http://localhost:8080"})
//	resp, err := client.R().Get("/api/quotes")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent resty-backed client. Transport errors,
// 429 and 5xx responses are retried with backoff.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	retries := opts.RetryCount
	switch {
	case retries == 0:
		retries = defaultRetryCount
	case retries < 0:
		retries = 0
	}

	client := resty.New().
		SetRetryCount(retries).
		SetRetryWaitTime(defaultRetryWait).
		SetRetryMaxWaitTime(defaultRetryMaxWait).
		AddRetryCondition(shouldRetry)

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &HTTPClient{Client: client}
}

func shouldRetry(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}
	return resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() >= http.StatusInternalServerError
}
