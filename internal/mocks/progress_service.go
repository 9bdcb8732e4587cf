package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/norsklab/norsk-api/internal/domain"
	"github.com/norsklab/norsk-api/internal/service"
)

// AttemptCall is one recorded RecordAttempt or RecordAttemptAt call.
type AttemptCall struct {
	Identity domain.Identity
	WordID   string
	Correct  bool
	At       time.Time
}

// MockProgressService implements service.ProgressService for testing. It is
// safe for concurrent use and remembers every attempt it was asked to
// record.
type MockProgressService struct {
	RecordAttemptAtFn func(ctx context.Context, identity domain.Identity, wordID string, correct bool, at time.Time) service.RecordResult
	FetchWeakWordsFn  func(ctx context.Context, identity domain.Identity, limit int) service.WeakWordsResult

	// RecordStatus is returned by the default RecordAttemptAt; empty means
	// StatusRecorded.
	RecordStatus service.Status
	// WeakWords is returned by the default FetchWeakWords with StatusOK.
	WeakWords []*domain.WordProgress

	mu    sync.Mutex
	calls []AttemptCall
}

var _ service.ProgressService = (*MockProgressService)(nil)

// RecordAttempt implements service.ProgressService.
func (m *MockProgressService) RecordAttempt(ctx context.Context, identity domain.Identity, wordID string, correct bool) service.RecordResult {
	return m.RecordAttemptAt(ctx, identity, wordID, correct, time.Now().UTC())
}

// RecordAttemptAt implements service.ProgressService.
func (m *MockProgressService) RecordAttemptAt(
	ctx context.Context,
	identity domain.Identity,
	wordID string,
	correct bool,
	at time.Time,
) service.RecordResult {
	m.mu.Lock()
	m.calls = append(m.calls, AttemptCall{Identity: identity, WordID: wordID, Correct: correct, At: at})
	m.mu.Unlock()

	if m.RecordAttemptAtFn != nil {
		return m.RecordAttemptAtFn(ctx, identity, wordID, correct, at)
	}
	status := m.RecordStatus
	if status == "" {
		status = service.StatusRecorded
	}
	return service.RecordResult{Status: status}
}

// FetchWeakWords implements service.ProgressService.
func (m *MockProgressService) FetchWeakWords(ctx context.Context, identity domain.Identity, limit int) service.WeakWordsResult {
	if m.FetchWeakWordsFn != nil {
		return m.FetchWeakWordsFn(ctx, identity, limit)
	}
	return service.WeakWordsResult{Status: service.StatusOK, Words: m.WeakWords}
}

// Calls returns a copy of the attempts recorded so far.
func (m *MockProgressService) Calls() []AttemptCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]AttemptCall(nil), m.calls...)
}
