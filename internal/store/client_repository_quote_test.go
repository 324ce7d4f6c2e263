// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/migrations"
	"github.com/MKhiriev/go-quote-keeper/models"
)

func newTestLocalRepo(t *testing.T) (LocalQuoteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	storeDB := &DB{DB: db, dialect: migrations.SQLite, logger: logger.Nop()}
	return NewLocalQuoteRepository(storeDB, logger.Nop()), mock
}

var (
	localSelectSQL = regexp.QuoteMeta(`SELECT text, category`)
	localInsertSQL = regexp.QuoteMeta(`INSERT INTO quotes (text, category)`)
	localDeleteSQL = regexp.QuoteMeta(`DELETE FROM quotes;`)
)

func TestLocalQuoteRepository_GetAll(t *testing.T) {
	t.Run("rows in insertion order", func(t *testing.T) {
		repo, mock := newTestLocalRepo(t)

		mock.ExpectQuery(localSelectSQL).
			WillReturnRows(sqlmock.NewRows([]string{"text", "category"}).
				AddRow("first", "A").
				AddRow("second", "B"))

		quotes, err := repo.GetAll(testContext())
		require.NoError(t, err)
		assert.Equal(t, []models.Quote{{Text: "first", Category: "A"}, {Text: "second", Category: "B"}}, quotes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table", func(t *testing.T) {
		repo, mock := newTestLocalRepo(t)

		mock.ExpectQuery(localSelectSQL).WillReturnRows(sqlmock.NewRows([]string{"text", "category"}))

		quotes, err := repo.GetAll(testContext())
		require.NoError(t, err)
		assert.Empty(t, quotes)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestLocalRepo(t)

		mock.ExpectQuery(localSelectSQL).WillReturnError(errors.New("disk I/O error"))

		_, err := repo.GetAll(testContext())
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("row error", func(t *testing.T) {
		repo, mock := newTestLocalRepo(t)

		mock.ExpectQuery(localSelectSQL).
			WillReturnRows(sqlmock.NewRows([]string{"text", "category"}).
				AddRow("first", "A").
				RowError(0, errors.New("corrupt")))

		_, err := repo.GetAll(testContext())
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestLocalQuoteRepository_ReplaceAll(t *testing.T) {
	quotes := []models.Quote{{Text: "a", Category: "A"}, {Text: "b", Category: "B"}}

	t.Run("clears then inserts in one transaction", func(t *testing.T) {
		repo, mock := newTestLocalRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(localDeleteSQL).WillReturnResult(sqlmock.NewResult(0, 3))
		prep := mock.ExpectPrepare(localInsertSQL)
		prep.ExpectExec().WithArgs("a", "A").WillReturnResult(sqlmock.NewResult(1, 1))
		prep.ExpectExec().WithArgs("b", "B").WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.ReplaceAll(testContext(), quotes))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		repo, mock := newTestLocalRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(localDeleteSQL).WillReturnResult(sqlmock.NewResult(0, 3))
		prep := mock.ExpectPrepare(localInsertSQL)
		prep.ExpectExec().WithArgs("a", "A").WillReturnError(errors.New("constraint"))
		mock.ExpectRollback()

		err := repo.ReplaceAll(testContext(), quotes)
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		repo, mock := newTestLocalRepo(t)

		mock.ExpectBegin().WillReturnError(errors.New("locked"))

		err := repo.ReplaceAll(testContext(), quotes)
		assert.ErrorIs(t, err, ErrBeginningTransaction)
	})

	t.Run("commit failure", func(t *testing.T) {
		repo, mock := newTestLocalRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(localDeleteSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit().WillReturnError(errors.New("busy"))

		err := repo.ReplaceAll(testContext(), nil)
		assert.ErrorIs(t, err, ErrCommitingTransaction)
	})
}

func TestLocalQuoteRepository_Append(t *testing.T) {
	t.Run("nothing to append", func(t *testing.T) {
		repo, mock := newTestLocalRepo(t)

		require.NoError(t, repo.Append(testContext()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("appends", func(t *testing.T) {
		repo, mock := newTestLocalRepo(t)

		mock.ExpectBegin()
		prep := mock.ExpectPrepare(localInsertSQL)
		prep.ExpectExec().WithArgs("a", "A").WillReturnResult(sqlmock.NewResult(7, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Append(testContext(), models.Quote{Text: "a", Category: "A"}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("prepare failure", func(t *testing.T) {
		repo, mock := newTestLocalRepo(t)

		mock.ExpectBegin()
		mock.ExpectPrepare(localInsertSQL).WillReturnError(errors.New("no such table"))
		mock.ExpectRollback()

		err := repo.Append(testContext(), models.Quote{Text: "a", Category: "A"})
		assert.ErrorIs(t, err, ErrPreparingStatement)
	})
}
