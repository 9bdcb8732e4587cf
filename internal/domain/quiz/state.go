package quiz

import (
	"fmt"
	"time"

	"github.com/norsklab/norsk-api/internal/domain"
)

// BatchSize is the maximum number of items in one batch.
const BatchSize = 10

// Phase is the coarse position of a session in its lifecycle.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseInBatch       Phase = "in_batch"
	PhaseBatchComplete Phase = "batch_complete"
)

// Feedback records whether the current item has been answered and how.
type Feedback string

const (
	FeedbackPending   Feedback = ""
	FeedbackCorrect   Feedback = "correct"
	FeedbackIncorrect Feedback = "incorrect"
)

// SessionState is the full state of a quiz session. It is a value: every
// transition returns a new state and leaves its input untouched.
type SessionState struct {
	// Pool holds items not yet drawn into any batch, in catalog order.
	Pool []domain.VocabularyItem `json:"pool"`
	// Batch is the current round, carried-over mistakes first.
	Batch []domain.VocabularyItem `json:"batch"`
	// Index points at the item being asked.
	Index int `json:"index"`
	// Mistakes collects items answered incorrectly in this batch.
	Mistakes []domain.VocabularyItem `json:"mistakes"`
	Score    int                     `json:"score"`
	Phase    Phase                   `json:"phase"`
	Feedback Feedback                `json:"feedback"`
}

// Current returns the item being asked. ok is false outside a batch.
func (s SessionState) Current() (item domain.VocabularyItem, ok bool) {
	if s.Phase != PhaseInBatch || s.Index < 0 || s.Index >= len(s.Batch) {
		return domain.VocabularyItem{}, false
	}
	return s.Batch[s.Index], true
}

// Answered reports whether the current item already has feedback.
func (s SessionState) Answered() bool {
	return s.Feedback != FeedbackPending
}

// IsLast reports whether the current item is the final one in the batch.
func (s SessionState) IsLast() bool {
	return s.Index == len(s.Batch)-1
}

// Validate rejects states that no sequence of transitions can produce.
// It is meant for states received from outside the process.
func (s SessionState) Validate() error {
	switch s.Phase {
	case PhaseIdle:
		if len(s.Batch) != 0 {
			return fmt.Errorf("%w: idle session with a batch", ErrInvalidState)
		}
	case PhaseInBatch, PhaseBatchComplete:
		if len(s.Batch) == 0 {
			return fmt.Errorf("%w: empty batch in phase %s", ErrInvalidState, s.Phase)
		}
		if s.Index < 0 || s.Index >= len(s.Batch) {
			return fmt.Errorf("%w: index %d out of range", ErrInvalidState, s.Index)
		}
	default:
		return fmt.Errorf("%w: unknown phase %q", ErrInvalidState, s.Phase)
	}

	switch s.Feedback {
	case FeedbackPending:
	case FeedbackCorrect, FeedbackIncorrect:
		if s.Phase != PhaseInBatch {
			return fmt.Errorf("%w: feedback outside a batch", ErrInvalidState)
		}
	default:
		return fmt.Errorf("%w: unknown feedback %q", ErrInvalidState, s.Feedback)
	}

	if len(s.Batch) > BatchSize {
		return fmt.Errorf("%w: batch of %d exceeds %d", ErrInvalidState, len(s.Batch), BatchSize)
	}
	if s.Score < 0 || s.Score+len(s.Mistakes) > len(s.Batch) {
		return fmt.Errorf("%w: score and mistakes exceed batch size", ErrInvalidState)
	}

	for _, item := range s.Batch {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidState, err)
		}
	}
	return nil
}

// BatchSummary is reported once every item in a batch is answered.
type BatchSummary struct {
	Score    int                     `json:"score"`
	Total    int                     `json:"total"`
	Mistakes []domain.VocabularyItem `json:"mistakes"`
}

// AttemptEvent reports a single checked answer for progress recording.
type AttemptEvent struct {
	WordID  string    `json:"word_id"`
	Correct bool      `json:"correct"`
	At      time.Time `json:"at"`
}
