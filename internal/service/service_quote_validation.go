// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quote-keeper/internal/validators"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// QuoteValidationService rejects invalid quotes before they reach the inner
// [QuoteService].
type QuoteValidationService struct {
	inner     QuoteService
	validator validators.Validator
}

// NewQuoteValidationService returns a wrapper validating with
// [validators.QuoteValidator].
func NewQuoteValidationService() QuoteServiceWrapper {
	return &QuoteValidationService{
		validator: validators.NewQuoteValidator(),
	}
}

func (v *QuoteValidationService) List(ctx context.Context, category string) ([]models.Quote, error) {
	return v.inner.List(ctx, category)
}

func (v *QuoteValidationService) Add(ctx context.Context, quote models.Quote) (bool, error) {
	if err := v.validator.Validate(ctx, quote); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidQuote, err)
	}

	return v.inner.Add(ctx, quote)
}

func (v *QuoteValidationService) Random(ctx context.Context, category string) (models.Quote, error) {
	return v.inner.Random(ctx, category)
}

func (v *QuoteValidationService) Categories(ctx context.Context) ([]string, error) {
	return v.inner.Categories(ctx)
}

func (v *QuoteValidationService) Wrap(wrapped QuoteService) QuoteService {
	v.inner = wrapped
	return v
}
