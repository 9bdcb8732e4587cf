package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/norsklab/norsk-api/internal/domain"
	"github.com/norsklab/norsk-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type progressFixture struct {
	svc      *ProgressServiceImpl
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	users    *MockUserStore
	progress *MockWordProgressStore
}

func newProgressFixture(t *testing.T) *progressFixture {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users := &MockUserStore{}
	progress := &MockWordProgressStore{}
	return &progressFixture{
		svc:      NewProgressService(db, users, progress, nil),
		db:       db,
		sqlMock:  sqlMock,
		users:    users,
		progress: progress,
	}
}

func TestNewProgressServicePanics(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	assert.Panics(t, func() { NewProgressService(db, nil, &MockWordProgressStore{}, nil) })
	assert.Panics(t, func() { NewProgressService(db, &MockUserStore{}, nil, nil) })
	assert.NotPanics(t, func() { NewProgressService(nil, nil, nil, nil) })
}

func TestRecordAttempt(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	identity := domain.Authenticated(userID, "kari@example.no", "Kari")
	at := time.Date(2024, 5, 17, 8, 0, 0, 0, time.UTC)

	t.Run("anonymous caller is skipped without store calls", func(t *testing.T) {
		f := newProgressFixture(t)

		res := f.svc.RecordAttempt(ctx, domain.Anonymous(), "a1-001", true)

		assert.Equal(t, StatusNotAuthenticated, res.Status)
		assert.False(t, res.Success())
		f.users.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
		f.progress.AssertNotCalled(t, "RecordAttempt", mock.Anything, mock.Anything)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("signed-in caller records in one transaction", func(t *testing.T) {
		f := newProgressFixture(t)
		stored := &domain.WordProgress{UserID: userID, WordID: "a1-001", IncorrectCount: 1}

		f.sqlMock.ExpectBegin()
		f.users.On("GetOrCreate", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == userID && u.Email == "kari@example.no" && u.Name == "Kari"
		})).Return(&domain.User{ID: userID}, nil)
		f.progress.On("RecordAttempt", mock.Anything, store.Attempt{
			UserID: userID, WordID: "a1-001", Correct: false, At: at,
		}).Return(stored, nil)
		f.sqlMock.ExpectCommit()

		res := f.svc.RecordAttemptAt(ctx, identity, "a1-001", false, at)

		assert.Equal(t, StatusRecorded, res.Status)
		assert.True(t, res.Success())
		assert.Same(t, stored, res.Progress)
		f.users.AssertExpectations(t)
		f.progress.AssertExpectations(t)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("default time comes from the clock", func(t *testing.T) {
		f := newProgressFixture(t)
		f.svc.now = func() time.Time { return at }

		f.sqlMock.ExpectBegin()
		f.users.On("GetOrCreate", mock.Anything, mock.Anything).Return(&domain.User{ID: userID}, nil)
		f.progress.On("RecordAttempt", mock.Anything, mock.MatchedBy(func(a store.Attempt) bool {
			return a.At.Equal(at) && a.Correct
		})).Return(&domain.WordProgress{}, nil)
		f.sqlMock.ExpectCommit()

		res := f.svc.RecordAttempt(ctx, identity, "a1-001", true)
		assert.Equal(t, StatusRecorded, res.Status)
		f.progress.AssertExpectations(t)
	})

	t.Run("store failure rolls back and reports error", func(t *testing.T) {
		f := newProgressFixture(t)

		f.sqlMock.ExpectBegin()
		f.users.On("GetOrCreate", mock.Anything, mock.Anything).Return(&domain.User{ID: userID}, nil)
		f.progress.On("RecordAttempt", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset")).Once()
		f.sqlMock.ExpectRollback()

		res := f.svc.RecordAttempt(ctx, identity, "a1-001", true)

		assert.Equal(t, StatusError, res.Status)
		assert.Nil(t, res.Progress)
		f.progress.AssertNumberOfCalls(t, "RecordAttempt", 1)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("user creation failure reports error", func(t *testing.T) {
		f := newProgressFixture(t)

		f.sqlMock.ExpectBegin()
		f.users.On("GetOrCreate", mock.Anything, mock.Anything).Return(nil, store.ErrInvalidEntity)
		f.sqlMock.ExpectRollback()

		res := f.svc.RecordAttempt(ctx, identity, "a1-001", true)

		assert.Equal(t, StatusError, res.Status)
		f.progress.AssertNotCalled(t, "RecordAttempt", mock.Anything, mock.Anything)
	})

	t.Run("begin failure reports error", func(t *testing.T) {
		f := newProgressFixture(t)
		f.sqlMock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		res := f.svc.RecordAttempt(ctx, identity, "a1-001", true)
		assert.Equal(t, StatusError, res.Status)
	})

	t.Run("blank word id", func(t *testing.T) {
		f := newProgressFixture(t)
		res := f.svc.RecordAttempt(ctx, identity, " ", true)
		assert.Equal(t, StatusError, res.Status)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("identity without email", func(t *testing.T) {
		f := newProgressFixture(t)
		res := f.svc.RecordAttempt(ctx, domain.Authenticated(userID, "", ""), "a1-001", true)
		assert.Equal(t, StatusError, res.Status)
	})

	t.Run("no database", func(t *testing.T) {
		svc := NewProgressService(nil, nil, nil, nil)
		assert.Equal(t, StatusError, svc.RecordAttempt(ctx, identity, "a1-001", true).Status)
		assert.Equal(t, StatusNotAuthenticated, svc.RecordAttempt(ctx, domain.Anonymous(), "a1-001", true).Status)
	})
}

func TestFetchWeakWords(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	identity := domain.Authenticated(userID, "kari@example.no", "")

	t.Run("anonymous", func(t *testing.T) {
		f := newProgressFixture(t)
		res := f.svc.FetchWeakWords(ctx, domain.Anonymous(), 10)
		assert.Equal(t, StatusNotAuthenticated, res.Status)
		assert.NotNil(t, res.Words)
		assert.Empty(t, res.Words)
		f.progress.AssertNotCalled(t, "ListWeak", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("limits", func(t *testing.T) {
		tests := []struct {
			requested int
			want      int
		}{
			{0, DefaultWeakWordsLimit},
			{-3, DefaultWeakWordsLimit},
			{5, 5},
			{500, MaxWeakWordsLimit},
		}
		for _, tt := range tests {
			f := newProgressFixture(t)
			words := []*domain.WordProgress{{WordID: "a1-001", IncorrectCount: 2}}
			f.progress.On("ListWeak", mock.Anything, userID, tt.want).Return(words, nil)

			res := f.svc.FetchWeakWords(ctx, identity, tt.requested)

			assert.Equal(t, StatusOK, res.Status)
			assert.True(t, res.Success())
			assert.Equal(t, words, res.Words)
			f.progress.AssertExpectations(t)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		f := newProgressFixture(t)
		f.progress.On("ListWeak", mock.Anything, userID, DefaultWeakWordsLimit).Return(nil, errors.New("boom"))

		res := f.svc.FetchWeakWords(ctx, identity, 0)
		assert.Equal(t, StatusError, res.Status)
		assert.Empty(t, res.Words)
	})

	t.Run("no database", func(t *testing.T) {
		res := NewProgressService(nil, nil, nil, nil).FetchWeakWords(ctx, identity, 0)
		assert.Equal(t, StatusError, res.Status)
	})
}

type lookupStub map[string]domain.VocabularyItem

func (l lookupStub) Lookup(ids []string) []domain.VocabularyItem {
	var out []domain.VocabularyItem
	for _, id := range ids {
		if w, ok := l[id]; ok {
			out = append(out, w)
		}
	}
	return out
}

func TestWeakWordItems(t *testing.T) {
	words := lookupStub{
		"a": {ID: "a", TargetText: "hus"},
		"b": {ID: "b", TargetText: "bil"},
	}
	records := []*domain.WordProgress{{WordID: "b"}, {WordID: "gone"}, {WordID: "a"}}

	items := WeakWordItems(words, records)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, "a", items[1].ID)
}

func TestServiceError(t *testing.T) {
	cause := errors.New("boom")
	err := NewServiceError("record_attempt", "failed to update progress", cause)
	assert.Equal(t, "record_attempt failed: failed to update progress: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "x failed: y", NewServiceError("x", "y", nil).Error())
}
