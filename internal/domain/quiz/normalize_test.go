package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		want     bool
	}{
		{"exact", "hus", "hus", true},
		{"padded and capitalized", " Hus ", "hus", true},
		{"upper case expected", "norge", "Norge", true},
		{"decomposed å", "g\u0061\u030a", "g\u00e5", true},
		{"upper Æ", "ÆRE", "ære", true},
		{"å is not a", "ga", "gå", false},
		{"ø is not o", "bok", "bøk", false},
		{"different word", "bil", "hus", false},
		{"blank", "  ", "hus", false},
		{"multi word", "god  morgen", "god morgen", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCorrect(tt.input, tt.expected))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hus", Normalize("\tHUS\n"))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, Normalize("Å"), Normalize("å"))
}
