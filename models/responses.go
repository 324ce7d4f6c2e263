// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// QuotesResponse is returned by the server for quote list requests.
type QuotesResponse struct {
	// Quotes holds the quotes in insertion order.
	Quotes []Quote `json:"quotes"`

	// Length is the number of entries in Quotes.
	Length int `json:"length"`
}

// CategoriesResponse is returned by the server for category list requests.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
	Length     int      `json:"length"`
}
