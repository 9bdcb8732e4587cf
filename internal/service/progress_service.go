package service

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/norsklab/norsk-api/internal/domain"
	"github.com/norsklab/norsk-api/internal/platform/logger"
	"github.com/norsklab/norsk-api/internal/store"
)

// Limits applied to weak-word queries.
const (
	DefaultWeakWordsLimit = 20
	MaxWeakWordsLimit     = 100
)

// Status is the outcome of a progress operation as reported to clients.
type Status string

const (
	StatusOK               Status = "ok"
	StatusRecorded         Status = "recorded"
	StatusNotAuthenticated Status = "not_authenticated"
	StatusError            Status = "error"
)

// RecordResult is the outcome of RecordAttempt.
type RecordResult struct {
	Status   Status
	Progress *domain.WordProgress
}

// Success reports whether the attempt was stored.
func (r RecordResult) Success() bool {
	return r.Status == StatusRecorded
}

// WeakWordsResult is the outcome of FetchWeakWords. Words is empty unless
// Status is StatusOK.
type WeakWordsResult struct {
	Status Status
	Words  []*domain.WordProgress
}

// Success reports whether the query ran.
func (r WeakWordsResult) Success() bool {
	return r.Status == StatusOK
}

// ProgressService records quiz attempts and reports weak words.
type ProgressService interface {
	// RecordAttempt stores one answer for the caller. Anonymous callers get
	// StatusNotAuthenticated without touching the store.
	RecordAttempt(ctx context.Context, identity domain.Identity, wordID string, correct bool) RecordResult

	// RecordAttemptAt is RecordAttempt with an explicit attempt time.
	RecordAttemptAt(ctx context.Context, identity domain.Identity, wordID string, correct bool, at time.Time) RecordResult

	// FetchWeakWords returns up to limit words the caller misses more often
	// than not, most recently missed first. limit <= 0 means the default;
	// larger values are capped at MaxWeakWordsLimit.
	FetchWeakWords(ctx context.Context, identity domain.Identity, limit int) WeakWordsResult
}

// ProgressServiceImpl implements ProgressService on top of the store interfaces.
type ProgressServiceImpl struct {
	db            store.TxBeginner
	userStore     store.UserStore
	progressStore store.WordProgressStore
	logger        *slog.Logger
	now           func() time.Time
}

var _ ProgressService = (*ProgressServiceImpl)(nil)

// NewProgressService creates a ProgressService. A nil db yields a service
// that reports StatusError to signed-in callers, for running without
// persistence; the stores may then be nil too.
func NewProgressService(
	db *sql.DB,
	userStore store.UserStore,
	progressStore store.WordProgressStore,
	logger *slog.Logger,
) *ProgressServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}

	s := &ProgressServiceImpl{
		logger: logger.With(slog.String("component", "progress_service")),
		now:    func() time.Time { return time.Now().UTC() },
	}
	if db == nil {
		return s
	}

	if userStore == nil {
		panic("userStore cannot be nil")
	}
	if progressStore == nil {
		panic("progressStore cannot be nil")
	}
	s.db = db
	s.userStore = userStore
	s.progressStore = progressStore
	return s
}

// RecordAttempt implements ProgressService.RecordAttempt
func (s *ProgressServiceImpl) RecordAttempt(
	ctx context.Context,
	identity domain.Identity,
	wordID string,
	correct bool,
) RecordResult {
	return s.RecordAttemptAt(ctx, identity, wordID, correct, s.now())
}

// RecordAttemptAt implements ProgressService.RecordAttemptAt
func (s *ProgressServiceImpl) RecordAttemptAt(
	ctx context.Context,
	identity domain.Identity,
	wordID string,
	correct bool,
	at time.Time,
) RecordResult {
	log := logger.FromContextOrDefault(ctx, s.logger)

	userID, ok := identity.UserID()
	if !ok {
		log.Debug("skipping attempt for anonymous caller", slog.String("word_id", wordID))
		return RecordResult{Status: StatusNotAuthenticated}
	}
	log = log.With(slog.String("user_id", userID.String()), slog.String("word_id", wordID))

	if s.db == nil {
		log.Warn("cannot record attempt", slog.String("error", ErrStoreUnavailable.Error()))
		return RecordResult{Status: StatusError}
	}
	if strings.TrimSpace(wordID) == "" {
		log.Warn("cannot record attempt", slog.String("error", ErrInvalidAttempt.Error()))
		return RecordResult{Status: StatusError}
	}

	user, err := domain.NewUser(userID, identity.Email(), identity.Name())
	if err != nil {
		log.Error("invalid identity for progress recording", slog.String("error", err.Error()))
		return RecordResult{Status: StatusError}
	}

	var progress *domain.WordProgress
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.userStore.WithTx(tx).GetOrCreate(ctx, user); err != nil {
			return NewServiceError("record_attempt", "failed to ensure user", err)
		}

		p, err := s.progressStore.WithTx(tx).RecordAttempt(ctx, store.Attempt{
			UserID:  userID,
			WordID:  wordID,
			Correct: correct,
			At:      at.UTC(),
		})
		if err != nil {
			return NewServiceError("record_attempt", "failed to update progress", err)
		}
		progress = p
		return nil
	})
	if err != nil {
		log.Error("failed to record attempt", slog.String("error", err.Error()))
		return RecordResult{Status: StatusError}
	}

	log.Debug("attempt recorded", slog.Bool("correct", correct))
	return RecordResult{Status: StatusRecorded, Progress: progress}
}

// FetchWeakWords implements ProgressService.FetchWeakWords
func (s *ProgressServiceImpl) FetchWeakWords(
	ctx context.Context,
	identity domain.Identity,
	limit int,
) WeakWordsResult {
	log := logger.FromContextOrDefault(ctx, s.logger)

	userID, ok := identity.UserID()
	if !ok {
		return WeakWordsResult{Status: StatusNotAuthenticated, Words: []*domain.WordProgress{}}
	}
	if s.db == nil {
		log.Warn("cannot fetch weak words", slog.String("error", ErrStoreUnavailable.Error()))
		return WeakWordsResult{Status: StatusError, Words: []*domain.WordProgress{}}
	}

	words, err := s.progressStore.ListWeak(ctx, userID, ClampWeakWordsLimit(limit))
	if err != nil {
		log.Error("failed to fetch weak words",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return WeakWordsResult{Status: StatusError, Words: []*domain.WordProgress{}}
	}

	return WeakWordsResult{Status: StatusOK, Words: words}
}

// ClampWeakWordsLimit applies the default and maximum weak-word limits.
func ClampWeakWordsLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultWeakWordsLimit
	case limit > MaxWeakWordsLimit:
		return MaxWeakWordsLimit
	default:
		return limit
	}
}

// WordLookup resolves word IDs to vocabulary items. content.Catalog implements it.
type WordLookup interface {
	Lookup(ids []string) []domain.VocabularyItem
}

// WeakWordItems maps weak-word records back to vocabulary items, keeping
// their order. Records for words no longer in the catalog are skipped.
func WeakWordItems(words WordLookup, records []*domain.WordProgress) []domain.VocabularyItem {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.WordID)
	}
	return words.Lookup(ids)
}
