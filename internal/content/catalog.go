package content

import (
	"fmt"

	"github.com/norsklab/norsk-api/internal/domain"
)

// LevelInfo summarizes one level for browsing.
type LevelInfo struct {
	Level      domain.Level `json:"level"`
	WordCount  int          `json:"word_count"`
	Categories []string     `json:"categories"`
}

// Catalog is the read-only, ordered collection of words and grammar topics.
// It is safe for concurrent use.
type Catalog struct {
	words   []domain.VocabularyItem
	byID    map[string]int
	byLevel map[domain.Level][]domain.VocabularyItem
	grammar map[domain.Level][]domain.GrammarTopic
}

// NewCatalog indexes words and grammar topics. Word order is preserved.
func NewCatalog(words []domain.VocabularyItem, grammar []domain.GrammarTopic) (*Catalog, error) {
	if err := checkWords(words); err != nil {
		return nil, err
	}

	c := &Catalog{
		words:   make([]domain.VocabularyItem, len(words)),
		byID:    make(map[string]int, len(words)),
		byLevel: make(map[domain.Level][]domain.VocabularyItem),
		grammar: make(map[domain.Level][]domain.GrammarTopic),
	}
	copy(c.words, words)

	for i, w := range c.words {
		c.byID[w.ID] = i
		c.byLevel[w.Level] = append(c.byLevel[w.Level], w)
	}
	for _, t := range grammar {
		c.grammar[t.Level] = append(c.grammar[t.Level], t)
	}
	return c, nil
}

// Load builds a catalog from the embedded material, replacing the word list
// with the file at wordListPath when it is set.
func Load(wordListPath string) (*Catalog, error) {
	var (
		words []domain.VocabularyItem
		err   error
	)
	if wordListPath != "" {
		words, err = LoadFile(wordListPath)
	} else {
		words, err = DefaultWords()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load words: %w", err)
	}

	grammar, err := DefaultGrammar()
	if err != nil {
		return nil, fmt.Errorf("failed to load grammar: %w", err)
	}

	return NewCatalog(words, grammar)
}

// Levels returns every level in order with its word count and categories.
// Levels without words are included with a zero count.
func (c *Catalog) Levels() []LevelInfo {
	levels := domain.Levels()
	out := make([]LevelInfo, 0, len(levels))
	for _, l := range levels {
		out = append(out, LevelInfo{
			Level:      l,
			WordCount:  len(c.byLevel[l]),
			Categories: c.Categories(l),
		})
	}
	return out
}

// WordsByLevel returns the level's words in catalog order. An optional
// category narrows the result. ErrNoItems is returned when nothing matches.
func (c *Catalog) WordsByLevel(level domain.Level, category string) ([]domain.VocabularyItem, error) {
	var out []domain.VocabularyItem
	for _, w := range c.byLevel[level] {
		if category != "" && w.Category != category {
			continue
		}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("level %s: %w", level, ErrNoItems)
	}
	return out, nil
}

// Categories lists the level's categories in order of first appearance.
func (c *Catalog) Categories(level domain.Level) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, w := range c.byLevel[level] {
		if w.Category == "" || seen[w.Category] {
			continue
		}
		seen[w.Category] = true
		out = append(out, w.Category)
	}
	return out
}

// Word looks up a word by ID.
func (c *Catalog) Word(id string) (domain.VocabularyItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.VocabularyItem{}, false
	}
	return c.words[i], true
}

// Lookup resolves IDs to words, keeping the order of ids and skipping
// unknown or repeated IDs.
func (c *Catalog) Lookup(ids []string) []domain.VocabularyItem {
	out := make([]domain.VocabularyItem, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		if w, ok := c.Word(id); ok {
			seen[id] = true
			out = append(out, w)
		}
	}
	return out
}

// Len returns the number of words in the catalog.
func (c *Catalog) Len() int {
	return len(c.words)
}

// GrammarTopics returns the topics for a level; nil when none are written yet.
func (c *Catalog) GrammarTopics(level domain.Level) []domain.GrammarTopic {
	topics := c.grammar[level]
	if len(topics) == 0 {
		return nil
	}
	out := make([]domain.GrammarTopic, len(topics))
	copy(out, topics)
	return out
}
