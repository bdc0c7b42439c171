package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &sessionRepository{db: db, logger: logger.Nop()}, mock
}

func TestSessionRepository(t *testing.T) {
	createdAt := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	session := models.Session{ID: "0190-abc", UserID: 1, CreatedAt: createdAt, ExpiresAt: createdAt.Add(time.Hour)}

	t.Run("create", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)
		mock.ExpectExec(`INSERT INTO sessions \(id,user_id,created_at,expires_at\) VALUES \(\$1,\$2,\$3,\$4\)`).
			WithArgs(session.ID, session.UserID, session.CreatedAt, session.ExpiresAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.CreateSession(context.Background(), session))
		expectationsMet(t, mock)
	})

	t.Run("find", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)
		mock.ExpectQuery(`SELECT id, user_id, created_at, expires_at FROM sessions WHERE id = \$1`).
			WithArgs(session.ID).
			WillReturnRows(sqlmock.NewRows(sessionColumns).AddRow(session.ID, 1, createdAt, session.ExpiresAt))

		found, err := repo.FindSession(context.Background(), session.ID)
		require.NoError(t, err)
		assert.Equal(t, session, found)
	})

	t.Run("find missing", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)
		mock.ExpectQuery("FROM sessions").WillReturnRows(sqlmock.NewRows(sessionColumns))

		_, err := repo.FindSession(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("delete missing session is not an error", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)
		mock.ExpectExec(`DELETE FROM sessions WHERE id = \$1`).WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.DeleteSession(context.Background(), "missing"))
	})

	t.Run("delete failure", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)
		mock.ExpectExec("DELETE FROM sessions").WillReturnError(errors.New("boom"))

		assert.ErrorIs(t, repo.DeleteSession(context.Background(), session.ID), ErrExecutingStatement)
	})
}
