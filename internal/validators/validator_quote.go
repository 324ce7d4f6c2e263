// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-quote-keeper/models"
)

// Field names accepted by [QuoteValidator.Validate].
const (
	FieldText     = "text"
	FieldCategory = "category"
	// FieldQuotes targets the list itself: it must not be empty.
	FieldQuotes = "quotes"
)

const (
	MaxTextLength     = 2000
	MaxCategoryLength = 64
	// MaxTextBytes keeps the encoded (text, category) pair under the
	// Postgres btree row limit of the unique index. A category of
	// MaxCategoryLength runes takes at most 256 bytes.
	MaxTextBytes = 2048
)

// QuoteValidator validates [models.Quote] values and quote lists.
// Whitespace-only text or category counts as empty.
type QuoteValidator struct{}

// NewQuoteValidator returns a ready-to-use [QuoteValidator].
func NewQuoteValidator() *QuoteValidator {
	return &QuoteValidator{}
}

// Validate implements [Validator] for models.Quote, *models.Quote and
// []models.Quote.
func (v *QuoteValidator) Validate(ctx context.Context, data any, fields ...string) error {
	switch value := data.(type) {
	case models.Quote:
		return v.validateQuote(ctx, value, fields...)
	case *models.Quote:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateQuote(ctx, *value, fields...)
	case []models.Quote:
		return v.validateQuotes(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *QuoteValidator) validateQuote(_ context.Context, q models.Quote, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldCategory}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			text := strings.TrimSpace(q.Text)
			if text == "" {
				return ErrEmptyText
			}
			if len(text) > MaxTextBytes || utf8.RuneCountInString(text) > MaxTextLength {
				return ErrTextTooLong
			}
		case FieldCategory:
			category := strings.TrimSpace(q.Category)
			if category == "" {
				return ErrEmptyCategory
			}
			if utf8.RuneCountInString(category) > MaxCategoryLength {
				return ErrCategoryTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QuoteValidator) validateQuotes(ctx context.Context, quotes []models.Quote, fields ...string) error {
	if len(quotes) == 0 {
		return ErrEmptyQuoteList
	}

	quoteFields := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != FieldQuotes {
			quoteFields = append(quoteFields, f)
		}
	}

	for i, q := range quotes {
		if err := v.validateQuote(ctx, q, quoteFields...); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
	}

	return nil
}
