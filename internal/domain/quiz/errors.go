package quiz

import "errors"

var (
	// ErrEmptyPool is returned when a batch is requested but there is
	// nothing left to ask: the pool and carried-over mistakes are both empty.
	// This marks the end of the session, not a retryable failure.
	ErrEmptyPool = errors.New("no items left to quiz")

	// ErrAnswerRequired is returned by Advance before the current item is answered.
	ErrAnswerRequired = errors.New("current item has not been answered")

	// ErrBatchNotComplete is returned when summarizing or continuing a batch
	// that still has unanswered items.
	ErrBatchNotComplete = errors.New("batch is not complete")

	// ErrNotInBatch is returned by transitions that need an active batch.
	ErrNotInBatch = errors.New("no batch in progress")

	// ErrInvalidState is returned when a SessionState is structurally impossible.
	ErrInvalidState = errors.New("invalid session state")
)
