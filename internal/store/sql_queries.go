// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-quote-keeper/models"
)

const quotesTable = "quotes"

var (
	quoteColumns = []string{"text", "category"}

	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

// filterByCategory matches the client filter: the "all" keyword is case
// insensitive, a named category is compared exactly after trimming.
func filterByCategory(builder sq.SelectBuilder, category string) sq.SelectBuilder {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, models.AllCategories) {
		return builder
	}
	return builder.Where(sq.Eq{"category": category})
}

func buildSelectQuotesQuery(category string) (string, []any, error) {
	builder := psql.Select(quoteColumns...).From(quotesTable)

	query, args, err := filterByCategory(builder, category).OrderBy("id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectRandomQuoteQuery(category string) (string, []any, error) {
	builder := psql.Select(quoteColumns...).From(quotesTable)

	query, args, err := filterByCategory(builder, category).OrderBy("RANDOM()").Limit(1).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectCategoriesQuery() (string, []any, error) {
	query, args, err := psql.Select("category").
		Distinct().
		From(quotesTable).
		OrderBy("category").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertQuoteQuery relies on the (text, category) unique constraint:
// an already stored pair inserts zero rows.
func buildInsertQuoteQuery(q models.Quote) (string, []any, error) {
	query, args, err := psql.Insert(quotesTable).
		Columns(quoteColumns...).
		Values(q.Text, q.Category).
		Suffix("ON CONFLICT (text, category) DO NOTHING").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
