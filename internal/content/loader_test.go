package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/norsklab/norsk-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWords(t *testing.T) {
	input := `[
		{"id": "1", "norwegian": "hus", "english": "house", "level": "A1", "category": "home"},
		{"id": "2", "norwegian": "særegen", "english": "distinctive", "level": "C2", "category": "adjectives"},
		{"id": "3", "norwegian": "avveining", "english": "trade-off", "level": "C1", "category": "language"},
		{"id": "4", "norwegian": "noe", "english": "something", "level": "X9", "category": "misc"}
	]`

	words, err := LoadWords(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, words, 3, "unknown level dropped")

	assert.Equal(t, domain.VocabularyItem{
		ID: "1", SourceText: "house", TargetText: "hus", Level: domain.LevelA1, Category: "home",
	}, words[0])
	assert.Equal(t, domain.LevelC1Up, words[1].Level)
	assert.Equal(t, domain.LevelC1Up, words[2].Level)
}

func TestLoadWordsErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"duplicate id", `[{"id":"1","norwegian":"a","english":"b","level":"A1"},{"id":"1","norwegian":"c","english":"d","level":"A2"}]`, ErrDuplicateWord},
		{"missing norwegian", `[{"id":"1","norwegian":"","english":"b","level":"A1"}]`, domain.ErrEmptyTargetText},
		{"missing id", `[{"id":"","norwegian":"a","english":"b","level":"A1"}]`, domain.ErrEmptyWordID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWords(strings.NewReader(tt.input))
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}

	_, err := LoadWords(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestDefaultMaterial(t *testing.T) {
	words, err := DefaultWords()
	require.NoError(t, err)
	assert.NotEmpty(t, words)

	levels := map[domain.Level]int{}
	for _, w := range words {
		levels[w.Level]++
		assert.NotEqual(t, "x-001", w.ID, "entries with unknown levels are dropped")
	}
	for _, l := range domain.Levels() {
		assert.Positive(t, levels[l], "level %s has words", l)
	}

	topics, err := DefaultGrammar()
	require.NoError(t, err)
	assert.NotEmpty(t, topics)
	assert.Equal(t, "Introduction to Nouns", topics[0].Title)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "words.json")
	require.NoError(t, os.WriteFile(jsonPath,
		[]byte(`[{"id":"1","norwegian":"hus","english":"house","level":"A1","category":"home"}]`), 0o600))

	words, err := LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Len(t, words, 1)

	_, err = LoadFile(filepath.Join(dir, "words.txt"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	emptyCSV := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(emptyCSV, []byte("id,norwegian,english,level,category\n"), 0o600))
	_, err = LoadFile(emptyCSV)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestLoadGrammarDropsUnknownLevels(t *testing.T) {
	topics, err := LoadGrammar(strings.NewReader(`[
		{"level":"A1","title":"Nouns","content":"..."},
		{"level":"Z","title":"Nothing","content":"..."}
	]`))
	require.NoError(t, err)
	assert.Len(t, topics, 1)

	_, err = LoadGrammar(strings.NewReader(`[{"level":"A1","title":" ","content":"x"}]`))
	assert.ErrorIs(t, err, domain.ErrEmptyContent)
}
