package content

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/norsklab/norsk-api/internal/domain"
)

//go:embed data/words.json data/grammar.json
var embedded embed.FS

// rawWord is a word list entry as stored on disk.
type rawWord struct {
	ID        string `json:"id"`
	Norwegian string `json:"norwegian"`
	English   string `json:"english"`
	Level     string `json:"level"`
	Category  string `json:"category"`
}

type rawTopic struct {
	Level   string `json:"level"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// LoadWords parses a JSON word list. Levels C1 and C2 are folded into C1+,
// entries with any other unknown level are dropped. Empty fields and
// duplicate IDs are errors.
func LoadWords(r io.Reader) ([]domain.VocabularyItem, error) {
	var raw []rawWord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode word list: %w", err)
	}

	words := make([]domain.VocabularyItem, 0, len(raw))
	for _, w := range raw {
		item, ok := toItem(w)
		if !ok {
			continue
		}
		words = append(words, item)
	}

	if err := checkWords(words); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadFile reads a word list from disk, choosing the parser by extension.
func LoadFile(path string) ([]domain.VocabularyItem, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		f, err := os.Open(path) //nolint:gosec // path comes from operator config
		if err != nil {
			return nil, fmt.Errorf("failed to open word list: %w", err)
		}
		defer func() { _ = f.Close() }()
		return LoadWords(f)
	case ".xlsx", ".csv":
		cfg := DefaultImportConfig()
		cfg.FilePath = path
		result, err := ImportWords(cfg)
		if err != nil {
			return nil, err
		}
		if len(result.Words) == 0 {
			return nil, fmt.Errorf("%s: %w", path, ErrNoItems)
		}
		return result.Words, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// DefaultWords returns the embedded word list.
func DefaultWords() ([]domain.VocabularyItem, error) {
	data, err := embedded.ReadFile("data/words.json")
	if err != nil {
		return nil, err
	}
	return LoadWords(bytes.NewReader(data))
}

// DefaultGrammar returns the embedded grammar topics.
func DefaultGrammar() ([]domain.GrammarTopic, error) {
	data, err := embedded.ReadFile("data/grammar.json")
	if err != nil {
		return nil, err
	}
	return LoadGrammar(bytes.NewReader(data))
}

// LoadGrammar parses grammar topics. Unknown levels are dropped.
func LoadGrammar(r io.Reader) ([]domain.GrammarTopic, error) {
	var raw []rawTopic
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode grammar topics: %w", err)
	}

	topics := make([]domain.GrammarTopic, 0, len(raw))
	for _, t := range raw {
		level, ok := domain.NormalizeLevel(t.Level)
		if !ok {
			continue
		}
		if strings.TrimSpace(t.Title) == "" {
			return nil, fmt.Errorf("grammar topic at level %s: %w", level, domain.ErrEmptyContent)
		}
		topics = append(topics, domain.GrammarTopic{Level: level, Title: t.Title, Content: t.Content})
	}
	return topics, nil
}

func toItem(w rawWord) (domain.VocabularyItem, bool) {
	level, ok := domain.NormalizeLevel(w.Level)
	if !ok {
		return domain.VocabularyItem{}, false
	}
	return domain.VocabularyItem{
		ID:         strings.TrimSpace(w.ID),
		SourceText: strings.TrimSpace(w.English),
		TargetText: strings.TrimSpace(w.Norwegian),
		Level:      level,
		Category:   strings.TrimSpace(w.Category),
	}, true
}

func checkWords(words []domain.VocabularyItem) error {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if err := w.Validate(); err != nil {
			return err
		}
		if _, dup := seen[w.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateWord, w.ID)
		}
		seen[w.ID] = struct{}{}
	}
	return nil
}
