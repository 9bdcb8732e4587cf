// Package domain holds the vocabulary trainer's entities: words, levels,
// grammar topics, users and per-word progress.
package domain

import "errors"

// Sentinels for entity construction. Constructors wrap them with the field
// that failed, so match with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrInvalidID    = errors.New("malformed identifier")
	ErrInvalidLevel = errors.New("unknown level")
	ErrEmptyContent = errors.New("required text is empty")

	// ErrUnauthorized marks operations that need a signed-in learner.
	ErrUnauthorized = errors.New("sign-in required")
)
