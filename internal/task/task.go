package task

import (
	"context"

	"github.com/google/uuid"
)

// TaskStatus is where a task is in its single run. Tasks are never
// persisted or retried, so a task moves forward only:
// pending → processing → completed | failed.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// Done reports whether the task has finished, successfully or not.
func (s TaskStatus) Done() bool {
	return s == TaskStatusCompleted || s == TaskStatusFailed
}

// TaskTypeRecordAttempt persists one graded quiz answer.
const TaskTypeRecordAttempt = "record_attempt"

// Task is one unit of background work run by the worker pool.
type Task interface {
	ID() uuid.UUID
	Type() string
	// Payload is the JSON the task was built from, kept for logging.
	Payload() []byte
	Status() TaskStatus
	// Execute runs the task once. The context is cancelled when the pool
	// stops.
	Execute(ctx context.Context) error
}

// TaskQueueReader is the consuming side of the queue, used by workers.
type TaskQueueReader interface {
	GetChannel() <-chan Task
}

// TaskQueueWriter is the producing side of the queue. Enqueue fails fast
// with ErrQueueFull or ErrQueueClosed instead of blocking the producer.
type TaskQueueWriter interface {
	Enqueue(task Task) error
	Close()
}
