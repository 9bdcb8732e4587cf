package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/norsklab/norsk-api/internal/events"
)

// AttemptEventHandler turns WordAttempted events into RecordAttemptTasks.
// When the queue is full the attempt is dropped with a warning so the quiz
// never waits on storage.
type AttemptEventHandler struct {
	queue    TaskQueueWriter
	recorder AttemptRecorder
	logger   *slog.Logger
}

var _ events.EventHandler = (*AttemptEventHandler)(nil)

// NewAttemptEventHandler creates a handler that enqueues onto queue.
func NewAttemptEventHandler(queue TaskQueueWriter, recorder AttemptRecorder, logger *slog.Logger) *AttemptEventHandler {
	if queue == nil {
		panic("queue cannot be nil")
	}
	if recorder == nil {
		panic("recorder cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AttemptEventHandler{
		queue:    queue,
		recorder: recorder,
		logger:   logger.With(slog.String("component", "attempt_event_handler")),
	}
}

// HandleEvent implements events.EventHandler.
func (h *AttemptEventHandler) HandleEvent(ctx context.Context, event *events.Event) error {
	if event.Type != events.WordAttempted {
		return nil
	}
	log := h.logger.With(slog.String("event_id", event.ID.String()))

	var payload events.WordAttemptedPayload
	if err := event.UnmarshalPayload(&payload); err != nil {
		log.Error("failed to unmarshal payload", slog.String("error", err.Error()))
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	// Nothing to store for anonymous callers; keep the queue for real work.
	if !payload.Identity().IsAuthenticated() {
		return nil
	}

	t, err := NewRecordAttemptTask(payload, h.recorder, h.logger)
	if err != nil {
		log.Error("failed to create task", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create task: %w", err)
	}

	if err := h.queue.Enqueue(t); err != nil {
		if errors.Is(err, ErrQueueFull) {
			log.Warn("dropping attempt, task queue full",
				slog.String("word_id", payload.WordID),
				slog.String("user_id", payload.UserID.String()))
			return nil
		}
		log.Error("failed to enqueue task", slog.String("error", err.Error()))
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	return nil
}
