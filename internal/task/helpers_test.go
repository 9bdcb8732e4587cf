package task

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockTask is a simple implementation of the Task interface for testing
type MockTask struct {
	TaskID     uuid.UUID
	TaskType   string
	TaskStatus TaskStatus
	ExecuteFn  func(ctx context.Context) error
}

func newMockTask(fn func(ctx context.Context) error) *MockTask {
	if fn == nil {
		fn = func(ctx context.Context) error { return nil }
	}
	return &MockTask{
		TaskID:     uuid.New(),
		TaskType:   "mock_task",
		TaskStatus: TaskStatusPending,
		ExecuteFn:  fn,
	}
}

func (t *MockTask) ID() uuid.UUID                     { return t.TaskID }
func (t *MockTask) Type() string                      { return t.TaskType }
func (t *MockTask) Payload() []byte                   { return nil }
func (t *MockTask) Status() TaskStatus                { return t.TaskStatus }
func (t *MockTask) Execute(ctx context.Context) error { return t.ExecuteFn(ctx) }
