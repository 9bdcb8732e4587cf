package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNegativeCount is returned when a progress counter is below zero.
var ErrNegativeCount = errors.New("attempt counts cannot be negative")

// WordProgress accumulates a user's attempts on a single word.
// There is at most one record per (UserID, WordID).
type WordProgress struct {
	ID              int64      `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	WordID          string     `json:"word_id"`
	FirstSeenAt     time.Time  `json:"first_seen_at"`
	LastSeenAt      time.Time  `json:"last_seen_at"`
	CorrectCount    int        `json:"correct_count"`
	IncorrectCount  int        `json:"incorrect_count"`
	LastIncorrectAt *time.Time `json:"last_incorrect_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsWeak reports whether incorrect attempts outnumber correct ones.
func (p *WordProgress) IsWeak() bool {
	return p.IncorrectCount > p.CorrectCount
}

// Attempts returns the total number of recorded attempts.
func (p *WordProgress) Attempts() int {
	return p.CorrectCount + p.IncorrectCount
}

// Validate checks the record's identifying fields and counters.
func (p *WordProgress) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrEmptyUserID
	}
	if strings.TrimSpace(p.WordID) == "" {
		return ErrEmptyWordID
	}
	if p.CorrectCount < 0 || p.IncorrectCount < 0 {
		return ErrNegativeCount
	}
	return nil
}
