// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getAllLocalQuotes = `
		SELECT text, category
		FROM quotes
		ORDER BY id;`

	insertLocalQuote = `
		INSERT INTO quotes (text, category)
		VALUES (?, ?);`

	deleteAllLocalQuotes = `DELETE FROM quotes;`
)
