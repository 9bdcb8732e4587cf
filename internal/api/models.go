package api

import (
	"time"

	"github.com/norsklab/norsk-api/internal/domain"
	"github.com/norsklab/norsk-api/internal/domain/quiz"
)

// StartQuizRequest starts a session over a level, or over the caller's weak
// words when Weak is set.
type StartQuizRequest struct {
	Level    string `json:"level"    validate:"required_without=Weak,max=8"`
	Category string `json:"category" validate:"max=64"`
	Weak     bool   `json:"weak"`
}

// AnswerRequest submits an answer for the current item of State.
type AnswerRequest struct {
	State quiz.SessionState `json:"state"`
	Input string            `json:"input" validate:"max=256"`
}

// StateRequest carries a session state for Advance and Continue.
type StateRequest struct {
	State quiz.SessionState `json:"state"`
}

// QuizItem is the prompt shown for the current item. The expected answer
// is never included before the item is answered.
type QuizItem struct {
	WordID   string       `json:"word_id"`
	Prompt   string       `json:"prompt"`
	Level    domain.Level `json:"level"`
	Category string       `json:"category,omitempty"`
	Position int          `json:"position"`
	Total    int          `json:"total"`
}

// QuizResponse is returned by every quiz transition.
type QuizResponse struct {
	State    quiz.SessionState  `json:"state"`
	Current  *QuizItem          `json:"current,omitempty"`
	Attempt  *quiz.AttemptEvent `json:"attempt,omitempty"`
	Expected string             `json:"expected,omitempty"`
	Summary  *quiz.BatchSummary `json:"summary,omitempty"`
	Complete bool               `json:"complete,omitempty"`
}

// RecordAttemptRequest records one answer directly.
type RecordAttemptRequest struct {
	WordID  string `json:"word_id" validate:"required,max=64"`
	Correct *bool  `json:"correct" validate:"required"`
}

// ProgressResponse reports the outcome of a progress write.
type ProgressResponse struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
}

// WeakWord is one weak-word record joined with its vocabulary item.
type WeakWord struct {
	WordID          string       `json:"word_id"`
	English         string       `json:"english,omitempty"`
	Norwegian       string       `json:"norwegian,omitempty"`
	Level           domain.Level `json:"level,omitempty"`
	Category        string       `json:"category,omitempty"`
	CorrectCount    int          `json:"correct_count"`
	IncorrectCount  int          `json:"incorrect_count"`
	LastIncorrectAt *time.Time   `json:"last_incorrect_at,omitempty"`
}

// WeakWordsResponse lists the caller's weak words.
type WeakWordsResponse struct {
	Success bool       `json:"success"`
	Reason  string     `json:"reason,omitempty"`
	Words   []WeakWord `json:"words"`
}

// GrammarResponse groups grammar topics.
type GrammarResponse struct {
	Topics []domain.GrammarTopic `json:"topics"`
}

// WordsResponse lists the words of a level.
type WordsResponse struct {
	Level domain.Level            `json:"level"`
	Words []domain.VocabularyItem `json:"words"`
}

// CategoriesResponse lists the categories of a level.
type CategoriesResponse struct {
	Level      domain.Level `json:"level"`
	Categories []string     `json:"categories"`
}
