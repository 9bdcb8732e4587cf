package quiz

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize prepares text for answer comparison: canonical composition
// (so a decomposed å equals a precomposed one), surrounding whitespace
// removed and full Unicode case folding. Distinct letters such as å and a
// stay distinct.
func Normalize(s string) string {
	s = strings.TrimSpace(norm.NFC.String(s))
	// A Caser keeps internal state, so each call gets its own.
	return norm.NFC.String(cases.Fold().String(s))
}

// IsCorrect reports whether input matches the expected answer after
// normalization. Blank input is never correct.
func IsCorrect(input, expected string) bool {
	in := Normalize(input)
	return in != "" && in == Normalize(expected)
}
