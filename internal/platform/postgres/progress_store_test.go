package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/norsklab/norsk-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var progressCols = []string{
	"id", "user_id", "word_id", "first_seen_at", "last_seen_at",
	"correct_count", "incorrect_count", "last_incorrect_at", "created_at", "updated_at",
}

func TestNewPostgresWordProgressStorePanicsOnNilDB(t *testing.T) {
	assert.Panics(t, func() { NewPostgresWordProgressStore(nil, nil) })
}

func TestRecordAttempt(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("correct attempt increments correct count", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresWordProgressStore(db, nil)

		mock.ExpectQuery("INSERT INTO word_progress").
			WithArgs(userID, "a1-001", at, 1, 0, nil).
			WillReturnRows(sqlmock.NewRows(progressCols).
				AddRow(1, userID.String(), "a1-001", at, at, 1, 0, nil, at, at))

		p, err := s.RecordAttempt(ctx, store.Attempt{UserID: userID, WordID: "a1-001", Correct: true, At: at})
		require.NoError(t, err)
		assert.Equal(t, 1, p.CorrectCount)
		assert.Equal(t, 0, p.IncorrectCount)
		assert.Nil(t, p.LastIncorrectAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("incorrect attempt sets last incorrect", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresWordProgressStore(db, nil)

		mock.ExpectQuery("ON CONFLICT \\(user_id, word_id\\) DO UPDATE").
			WithArgs(userID, "a1-002", at, 0, 1, at).
			WillReturnRows(sqlmock.NewRows(progressCols).
				AddRow(2, userID.String(), "a1-002", at.Add(-time.Hour), at, 3, 4, at, at.Add(-time.Hour), at))

		p, err := s.RecordAttempt(ctx, store.Attempt{UserID: userID, WordID: "a1-002", Correct: false, At: at})
		require.NoError(t, err)
		assert.Equal(t, 4, p.IncorrectCount)
		require.NotNil(t, p.LastIncorrectAt)
		assert.Equal(t, at, *p.LastIncorrectAt)
		assert.True(t, p.IsWeak())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing identifiers", func(t *testing.T) {
		db, _ := newMockDB(t)
		s := NewPostgresWordProgressStore(db, nil)

		_, err := s.RecordAttempt(ctx, store.Attempt{WordID: "x"})
		assert.Error(t, err)
		_, err = s.RecordAttempt(ctx, store.Attempt{UserID: userID})
		assert.Error(t, err)
	})

	t.Run("unknown user maps to invalid entity", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresWordProgressStore(db, nil)

		mock.ExpectQuery("INSERT INTO word_progress").
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode})

		_, err := s.RecordAttempt(ctx, store.Attempt{UserID: userID, WordID: "a1-001", Correct: true, At: at})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestGetProgress(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	db, mock := newMockDB(t)
	s := NewPostgresWordProgressStore(db, nil)

	mock.ExpectQuery("FROM word_progress WHERE user_id = \\$1 AND word_id = \\$2").
		WithArgs(userID, "nope").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(ctx, userID, "nope")
	assert.ErrorIs(t, err, store.ErrProgressNotFound)
}

func TestListWeak(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now().UTC()

	t.Run("returns rows in query order", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresWordProgressStore(db, nil)

		mock.ExpectQuery("WHERE user_id = \\$1 AND incorrect_count > correct_count").
			WithArgs(userID, 20).
			WillReturnRows(sqlmock.NewRows(progressCols).
				AddRow(5, userID.String(), "b1-001", now, now, 0, 3, now, now, now).
				AddRow(2, userID.String(), "a1-003", now, now, 1, 2, now.Add(-time.Hour), now, now))

		got, err := s.ListWeak(ctx, userID, 20)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "b1-001", got[0].WordID)
		assert.Equal(t, "a1-003", got[1].WordID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresWordProgressStore(db, nil)
		mock.ExpectQuery("FROM word_progress").WillReturnError(errors.New("boom"))

		_, err := s.ListWeak(ctx, userID, 5)
		assert.Error(t, err)
	})

	t.Run("row error", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresWordProgressStore(db, nil)
		mock.ExpectQuery("FROM word_progress").
			WillReturnRows(sqlmock.NewRows(progressCols).
				AddRow(5, userID.String(), "b1-001", now, now, 0, 3, now, now, now).
				RowError(0, errors.New("bad row")))

		_, err := s.ListWeak(ctx, userID, 5)
		assert.Error(t, err)
	})
}
