package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/norsklab/norsk-api/internal/domain"
)

// Attempt is one answered quiz item to be folded into a progress record.
type Attempt struct {
	UserID  uuid.UUID
	WordID  string
	Correct bool
	At      time.Time
}

// WordProgressStore defines persistence for per-user, per-word attempt counts.
type WordProgressStore interface {
	// RecordAttempt atomically creates or updates the (UserID, WordID) record:
	// the matching counter is incremented, last_seen_at is set to At and,
	// for incorrect attempts, last_incorrect_at as well. It returns the
	// record as stored after the update.
	RecordAttempt(ctx context.Context, attempt Attempt) (*domain.WordProgress, error)

	// Get returns the record for a user and word.
	// Returns ErrProgressNotFound if the user never attempted the word.
	Get(ctx context.Context, userID uuid.UUID, wordID string) (*domain.WordProgress, error)

	// ListWeak returns up to limit records where incorrect attempts outnumber
	// correct ones, most recently missed first.
	ListWeak(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.WordProgress, error)

	// WithTx returns a WordProgressStore that runs its queries on tx.
	WithTx(tx *sql.Tx) WordProgressStore
}
