// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// RemoteCategory is assigned to quotes received from the server without a
// category of their own.
const RemoteCategory = "Server"

// AllCategories is the filter value that disables category filtering.
const AllCategories = "all"

// Quote is a single quotation with a free-text category label.
//
// Two quotes are the same quote when both Text and Category match exactly;
// there is no identifier, timestamp or revision.
type Quote struct {
	// Text is the quote body.
	Text string `json:"text"`

	// Category is a free-text label used for filtering.
	Category string `json:"category"`
}

// QuoteKey is the identity of a quote used for deduplication during merge.
type QuoteKey struct {
	Text     string
	Category string
}

// Key returns the (text, category) identity of q.
func (q Quote) Key() QuoteKey {
	return QuoteKey{Text: q.Text, Category: q.Category}
}

// MatchesCategory reports whether q passes the given category filter.
// An empty filter or [AllCategories] matches every quote.
func (q Quote) MatchesCategory(category string) bool {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, AllCategories) {
		return true
	}
	return q.Category == category
}

// Normalize trims surrounding whitespace from both fields.
func (q Quote) Normalize() Quote {
	return Quote{
		Text:     strings.TrimSpace(q.Text),
		Category: strings.TrimSpace(q.Category),
	}
}
