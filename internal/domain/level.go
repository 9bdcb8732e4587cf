package domain

import (
	"fmt"
	"strings"
)

// Level is a proficiency tier partitioning the vocabulary.
type Level string

// Levels ordered from least to most advanced.
const (
	LevelA1   Level = "A1"
	LevelA2   Level = "A2"
	LevelB1   Level = "B1"
	LevelB2   Level = "B2"
	LevelC1Up Level = "C1+"
)

var orderedLevels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1Up}

// Levels returns every level, least advanced first.
func Levels() []Level {
	out := make([]Level, len(orderedLevels))
	copy(out, orderedLevels)
	return out
}

// IsValid reports whether l is one of the known levels.
func (l Level) IsValid() bool {
	for _, known := range orderedLevels {
		if l == known {
			return true
		}
	}
	return false
}

// Rank returns the position of l in the level order, or -1 if unknown.
func (l Level) Rank() int {
	for i, known := range orderedLevels {
		if l == known {
			return i
		}
	}
	return -1
}

func (l Level) String() string {
	return string(l)
}

// ParseLevel parses a level as it appears in URLs and flags. It is
// case-insensitive and accepts "C1" and "C2" as aliases for C1+.
func ParseLevel(s string) (Level, error) {
	if l, ok := NormalizeLevel(s); ok {
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// NormalizeLevel maps a raw level label from source data onto a Level.
// C1 and C2 both map to C1+. The second result is false for anything else.
func NormalizeLevel(raw string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "A1":
		return LevelA1, true
	case "A2":
		return LevelA2, true
	case "B1":
		return LevelB1, true
	case "B2":
		return LevelB2, true
	case "C1", "C2", "C1+":
		return LevelC1Up, true
	default:
		return "", false
	}
}
