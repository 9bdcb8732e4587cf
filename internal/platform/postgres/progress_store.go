package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/norsklab/norsk-api/internal/domain"
	"github.com/norsklab/norsk-api/internal/platform/logger"
	"github.com/norsklab/norsk-api/internal/store"
)

// PostgresWordProgressStore implements store.WordProgressStore.
type PostgresWordProgressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWordProgressStore creates a new PostgreSQL implementation of the
// WordProgressStore interface. If logger is nil, a default logger will be used.
func NewPostgresWordProgressStore(db store.DBTX, logger *slog.Logger) *PostgresWordProgressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWordProgressStore{
		db:     db,
		logger: logger.With(slog.String("component", "word_progress_store")),
	}
}

var _ store.WordProgressStore = (*PostgresWordProgressStore)(nil)

const progressColumns = `id, user_id, word_id, first_seen_at, last_seen_at,
	correct_count, incorrect_count, last_incorrect_at, created_at, updated_at`

// recordAttemptQuery folds one attempt into the (user, word) row in a single
// statement so concurrent attempts never lose an increment.
const recordAttemptQuery = `
	INSERT INTO word_progress (
		user_id, word_id, first_seen_at, last_seen_at,
		correct_count, incorrect_count, last_incorrect_at, created_at, updated_at
	)
	VALUES ($1, $2, $3, $3, $4, $5, $6, $3, $3)
	ON CONFLICT (user_id, word_id) DO UPDATE SET
		last_seen_at = EXCLUDED.last_seen_at,
		correct_count = word_progress.correct_count + EXCLUDED.correct_count,
		incorrect_count = word_progress.incorrect_count + EXCLUDED.incorrect_count,
		last_incorrect_at = COALESCE(EXCLUDED.last_incorrect_at, word_progress.last_incorrect_at),
		updated_at = EXCLUDED.updated_at
	RETURNING ` + progressColumns

const listWeakQuery = `
	SELECT ` + progressColumns + `
	FROM word_progress
	WHERE user_id = $1 AND incorrect_count > correct_count
	ORDER BY last_incorrect_at DESC NULLS LAST, id DESC
	LIMIT $2
`

// RecordAttempt implements store.WordProgressStore.RecordAttempt
func (s *PostgresWordProgressStore) RecordAttempt(
	ctx context.Context,
	attempt store.Attempt,
) (*domain.WordProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if attempt.UserID == uuid.Nil {
		return nil, store.NewStoreError("word_progress", "record_attempt", "missing user", domain.ErrEmptyUserID)
	}
	if attempt.WordID == "" {
		return nil, store.NewStoreError("word_progress", "record_attempt", "missing word", domain.ErrEmptyWordID)
	}

	at := attempt.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	correct, incorrect := 0, 0
	var lastIncorrect *time.Time
	if attempt.Correct {
		correct = 1
	} else {
		incorrect = 1
		lastIncorrect = &at
	}

	row := s.db.QueryRowContext(ctx, recordAttemptQuery,
		attempt.UserID, attempt.WordID, at, correct, incorrect, lastIncorrect)

	p, err := scanProgress(row)
	if err != nil {
		log.Error("failed to record attempt",
			slog.String("error", err.Error()),
			slog.String("user_id", attempt.UserID.String()),
			slog.String("word_id", attempt.WordID))
		return nil, store.NewStoreError("word_progress", "record_attempt", "upsert failed", MapError(err))
	}

	log.Debug("attempt recorded",
		slog.String("user_id", attempt.UserID.String()),
		slog.String("word_id", attempt.WordID),
		slog.Bool("correct", attempt.Correct),
		slog.Int("correct_count", p.CorrectCount),
		slog.Int("incorrect_count", p.IncorrectCount))
	return p, nil
}

// Get implements store.WordProgressStore.Get
func (s *PostgresWordProgressStore) Get(
	ctx context.Context,
	userID uuid.UUID,
	wordID string,
) (*domain.WordProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + progressColumns + ` FROM word_progress WHERE user_id = $1 AND word_id = $2`
	p, err := scanProgress(s.db.QueryRowContext(ctx, query, userID, wordID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProgressNotFound
		}
		log.Error("failed to get word progress",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("word_id", wordID))
		return nil, store.NewStoreError("word_progress", "get", "query failed", MapError(err))
	}
	return p, nil
}

// ListWeak implements store.WordProgressStore.ListWeak
func (s *PostgresWordProgressStore) ListWeak(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*domain.WordProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, listWeakQuery, userID, limit)
	if err != nil {
		log.Error("failed to list weak words",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("word_progress", "list_weak", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	out := make([]*domain.WordProgress, 0, limit)
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, store.NewStoreError("word_progress", "list_weak", "scan failed", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("word_progress", "list_weak", "iteration failed", MapError(err))
	}

	log.Debug("weak words listed",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(out)))
	return out, nil
}

// WithTx implements store.WordProgressStore.WithTx
func (s *PostgresWordProgressStore) WithTx(tx *sql.Tx) store.WordProgressStore {
	return &PostgresWordProgressStore{
		db:     tx,
		logger: s.logger,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProgress(row scanner) (*domain.WordProgress, error) {
	var (
		p             domain.WordProgress
		lastIncorrect sql.NullTime
	)
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.WordID,
		&p.FirstSeenAt,
		&p.LastSeenAt,
		&p.CorrectCount,
		&p.IncorrectCount,
		&lastIncorrect,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if lastIncorrect.Valid {
		t := lastIncorrect.Time
		p.LastIncorrectAt = &t
	}
	return &p, nil
}
