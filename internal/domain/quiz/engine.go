package quiz

import (
	"time"

	"github.com/norsklab/norsk-api/internal/domain"
)

// now is replaced in tests.
var now = func() time.Time { return time.Now().UTC() }

// StartBatch builds the next batch. Carried-over mistakes come first, then
// fresh items drawn at random from pool fill the batch up to BatchSize.
// Drawn items leave the pool. When there are more than BatchSize carry-overs
// the surplus is returned to the front of the pool.
//
// If both pool and carryOver are empty the returned state is idle and the
// error is ErrEmptyPool. A nil rng uses a time-seeded source.
func StartBatch(pool, carryOver []domain.VocabularyItem, rng RandomSource) (SessionState, error) {
	if len(pool) == 0 && len(carryOver) == 0 {
		return SessionState{
			Pool:     []domain.VocabularyItem{},
			Batch:    []domain.VocabularyItem{},
			Mistakes: []domain.VocabularyItem{},
			Phase:    PhaseIdle,
		}, ErrEmptyPool
	}
	if rng == nil {
		rng = defaultSource()
	}

	batch := make([]domain.VocabularyItem, 0, BatchSize)
	remaining := pool

	if len(carryOver) > BatchSize {
		batch = append(batch, carryOver[:BatchSize]...)
		remaining = append(clone(carryOver[BatchSize:]), pool...)
	} else {
		batch = append(batch, carryOver...)
	}

	fresh, rest := draw(remaining, BatchSize-len(batch), rng)
	batch = append(batch, fresh...)

	return SessionState{
		Pool:     rest,
		Batch:    batch,
		Index:    0,
		Mistakes: []domain.VocabularyItem{},
		Score:    0,
		Phase:    PhaseInBatch,
		Feedback: FeedbackPending,
	}, nil
}

// NewSession starts a session over pool with no carried-over mistakes.
func NewSession(pool []domain.VocabularyItem, rng RandomSource) (SessionState, error) {
	return StartBatch(pool, nil, rng)
}

// SubmitAnswer checks input against the current item. The state is returned
// unchanged with a nil event when there is no active item, the item was
// already answered, or input is blank.
func SubmitAnswer(state SessionState, input string) (SessionState, *AttemptEvent) {
	item, ok := state.Current()
	if !ok || state.Answered() || Normalize(input) == "" {
		return state, nil
	}

	next := state.copy()
	correct := IsCorrect(input, item.TargetText)
	if correct {
		next.Score++
		next.Feedback = FeedbackCorrect
	} else {
		next.Mistakes = append(next.Mistakes, item)
		next.Feedback = FeedbackIncorrect
	}

	return next, &AttemptEvent{WordID: item.ID, Correct: correct, At: now()}
}

// Advance moves past an answered item, or completes the batch after the
// last one.
func Advance(state SessionState) (SessionState, error) {
	if state.Phase != PhaseInBatch {
		return state, ErrNotInBatch
	}
	if !state.Answered() {
		return state, ErrAnswerRequired
	}

	next := state.copy()
	next.Feedback = FeedbackPending
	if state.IsLast() {
		next.Phase = PhaseBatchComplete
		return next, nil
	}
	next.Index++
	return next, nil
}

// Summary reports the score of a completed batch.
func Summary(state SessionState) (BatchSummary, error) {
	if state.Phase != PhaseBatchComplete {
		return BatchSummary{}, ErrBatchNotComplete
	}
	return BatchSummary{
		Score:    state.Score,
		Total:    len(state.Batch),
		Mistakes: clone(state.Mistakes),
	}, nil
}

// Continue starts the next batch from the remaining pool, carrying over
// this batch's mistakes. ErrEmptyPool means the session is finished.
func Continue(state SessionState, rng RandomSource) (SessionState, error) {
	if state.Phase != PhaseBatchComplete {
		return state, ErrBatchNotComplete
	}
	return StartBatch(state.Pool, state.Mistakes, rng)
}

// copy returns a state whose slices do not alias s.
func (s SessionState) copy() SessionState {
	s.Pool = clone(s.Pool)
	s.Batch = clone(s.Batch)
	s.Mistakes = clone(s.Mistakes)
	return s
}
