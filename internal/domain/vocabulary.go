package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors for vocabulary items.
var (
	ErrEmptyWordID     = errors.New("word ID cannot be empty")
	ErrEmptySourceText = errors.New("source text cannot be empty")
	ErrEmptyTargetText = errors.New("target text cannot be empty")
)

// VocabularyItem is a single English/Norwegian word pair. Items are owned
// by the content catalog and never mutated after loading.
type VocabularyItem struct {
	ID string `json:"id"`
	// SourceText is the prompt shown to the learner (English).
	SourceText string `json:"english"`
	// TargetText is the expected answer (Norwegian).
	TargetText string `json:"norwegian"`
	Level      Level  `json:"level"`
	Category   string `json:"category"`
}

// Validate checks that the item carries everything the quiz needs.
func (v VocabularyItem) Validate() error {
	if strings.TrimSpace(v.ID) == "" {
		return ErrEmptyWordID
	}
	if strings.TrimSpace(v.SourceText) == "" {
		return fmt.Errorf("word %s: %w", v.ID, ErrEmptySourceText)
	}
	if strings.TrimSpace(v.TargetText) == "" {
		return fmt.Errorf("word %s: %w", v.ID, ErrEmptyTargetText)
	}
	if !v.Level.IsValid() {
		return fmt.Errorf("word %s: %w: %q", v.ID, ErrInvalidLevel, v.Level)
	}
	return nil
}
