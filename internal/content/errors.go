package content

import "errors"

var (
	// ErrNoItems is returned when a level or filter selects no words.
	ErrNoItems = errors.New("no items")

	// ErrDuplicateWord is returned when two words share an ID.
	ErrDuplicateWord = errors.New("duplicate word ID")

	// ErrUnsupportedFormat is returned for word list files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported word list format")
)
