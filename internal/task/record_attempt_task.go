package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/norsklab/norsk-api/internal/domain"
	"github.com/norsklab/norsk-api/internal/events"
	"github.com/norsklab/norsk-api/internal/service"
)

// Common errors
var (
	ErrNilRecorder  = errors.New("attempt recorder cannot be nil")
	ErrEmptyWordID  = errors.New("word ID cannot be empty")
	ErrRecordFailed = errors.New("attempt was not recorded")
)

// AttemptRecorder stores a graded answer. service.ProgressServiceImpl
// implements it.
type AttemptRecorder interface {
	RecordAttemptAt(ctx context.Context, identity domain.Identity, wordID string, correct bool, at time.Time) service.RecordResult
}

// RecordAttemptTask persists one quiz answer through an AttemptRecorder.
type RecordAttemptTask struct {
	id       uuid.UUID
	attempt  events.WordAttemptedPayload
	recorder AttemptRecorder
	logger   *slog.Logger

	mu     sync.Mutex
	status TaskStatus
}

var _ Task = (*RecordAttemptTask)(nil)

// NewRecordAttemptTask creates a pending task for attempt.
func NewRecordAttemptTask(
	attempt events.WordAttemptedPayload,
	recorder AttemptRecorder,
	logger *slog.Logger,
) (*RecordAttemptTask, error) {
	if recorder == nil {
		return nil, ErrNilRecorder
	}
	if attempt.WordID == "" {
		return nil, ErrEmptyWordID
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RecordAttemptTask{
		id:       uuid.New(),
		attempt:  attempt,
		recorder: recorder,
		logger: logger.With(
			slog.String("task_type", TaskTypeRecordAttempt),
			slog.String("word_id", attempt.WordID)),
		status: TaskStatusPending,
	}, nil
}

// ID returns the task's unique identifier
func (t *RecordAttemptTask) ID() uuid.UUID {
	return t.id
}

// Type returns the task type identifier
func (t *RecordAttemptTask) Type() string {
	return TaskTypeRecordAttempt
}

// Payload returns the attempt as JSON.
func (t *RecordAttemptTask) Payload() []byte {
	b, err := json.Marshal(t.attempt)
	if err != nil {
		return nil
	}
	return b
}

// Status returns the current task status
func (t *RecordAttemptTask) Status() TaskStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

func (t *RecordAttemptTask) setStatus(s TaskStatus) {
	t.mu.Lock()
	t.status = s
	t.mu.Unlock()
}

// Execute records the attempt. An anonymous attempt completes without
// touching storage.
func (t *RecordAttemptTask) Execute(ctx context.Context) error {
	t.setStatus(TaskStatusProcessing)

	res := t.recorder.RecordAttemptAt(ctx, t.attempt.Identity(), t.attempt.WordID, t.attempt.Correct, t.attempt.At)
	switch res.Status {
	case service.StatusRecorded, service.StatusNotAuthenticated:
		t.setStatus(TaskStatusCompleted)
		t.logger.Debug("attempt processed", slog.String("status", string(res.Status)))
		return nil
	default:
		t.setStatus(TaskStatusFailed)
		return fmt.Errorf("%w: status %s", ErrRecordFailed, res.Status)
	}
}
