// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyText       = errors.New("quote text is required")
	ErrEmptyCategory   = errors.New("quote category is required")
	ErrTextTooLong     = errors.New("quote text is too long")
	ErrCategoryTooLong = errors.New("quote category is too long")
	ErrEmptyQuoteList  = errors.New("quote list cannot be empty")
)
