// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(HTTPClientOptions{})
	client2 := NewHTTPClient(HTTPClientOptions{})

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_AppliesOptions(t *testing.T) {
	client := NewHTTPClient(HTTPClientOptions{
		BaseURL:   "http://example.com",
		Timeout:   3 * time.Second,
		UserAgent: "go-quote-keeper/test",
	})

	assert.Equal(t, "http://example.com", client.BaseURL)
	assert.Equal(t, "go-quote-keeper/test", client.Header.Get("User-Agent"))
	assert.Equal(t, defaultRetryCount, client.RetryCount)
}

func TestNewHTTPClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(HTTPClientOptions{BaseURL: srv.URL})
	resp, err := client.R().Get("/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, int32(2), calls.Load())
}

func TestNewHTTPClient_NegativeRetryCountDisablesRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewHTTPClient(HTTPClientOptions{BaseURL: srv.URL, RetryCount: -1})
	resp, err := client.R().Get("/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode())
	assert.Equal(t, int32(1), calls.Load())
}

func Test_shouldRetry(t *testing.T) {
	assert.True(t, shouldRetry(nil, errors.New("dial")))
	assert.False(t, shouldRetry(nil, nil))
	assert.False(t, shouldRetry(&resty.Response{RawResponse: &http.Response{StatusCode: http.StatusBadRequest}}, nil))
	assert.True(t, shouldRetry(&resty.Response{RawResponse: &http.Response{StatusCode: http.StatusTooManyRequests}}, nil))
	assert.True(t, shouldRetry(&resty.Response{RawResponse: &http.Response{StatusCode: http.StatusBadGateway}}, nil))
}
