package content

import (
	"fmt"

	"github.com/norsklab/norsk-api/internal/domain"
)

// Direction selects which side of a flashcard is shown first.
type Direction string

const (
	// TargetFirst shows the Norwegian word and hides the English.
	TargetFirst Direction = "target_first"
	// SourceFirst shows the English word and hides the Norwegian.
	SourceFirst Direction = "source_first"
)

// ParseDirection parses a direction, defaulting to TargetFirst when empty.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case "", TargetFirst:
		return TargetFirst, nil
	case SourceFirst:
		return SourceFirst, nil
	default:
		return "", fmt.Errorf("%w: unknown direction %q", domain.ErrValidation, s)
	}
}

// Card is one flashcard.
type Card struct {
	WordID   string `json:"word_id"`
	Front    string `json:"front"`
	Back     string `json:"back"`
	Category string `json:"category,omitempty"`
}

// Deck is the ordered set of flashcards for a level.
type Deck struct {
	Level     domain.Level `json:"level"`
	Direction Direction    `json:"direction"`
	Cards     []Card       `json:"cards"`
}

// NewDeck builds a deck for level in catalog order.
func NewDeck(c *Catalog, level domain.Level, dir Direction) (Deck, error) {
	words, err := c.WordsByLevel(level, "")
	if err != nil {
		return Deck{}, err
	}

	cards := make([]Card, len(words))
	for i, w := range words {
		front, back := w.TargetText, w.SourceText
		if dir == SourceFirst {
			front, back = back, front
		}
		cards[i] = Card{WordID: w.ID, Front: front, Back: back, Category: w.Category}
	}
	return Deck{Level: level, Direction: dir, Cards: cards}, nil
}

// Cursor walks a deck one card at a time. Moving never wraps; moving
// resets the card to its front side.
type Cursor struct {
	deck    Deck
	index   int
	flipped bool
}

// NewCursor starts at the first card, front side up. d must not be empty,
// which holds for every deck returned by NewDeck.
func NewCursor(d Deck) *Cursor {
	return &Cursor{deck: d}
}

// Card returns the current card.
func (c *Cursor) Card() Card {
	return c.deck.Cards[c.index]
}

// Visible returns the side currently facing up.
func (c *Cursor) Visible() string {
	card := c.Card()
	if c.flipped {
		return card.Back
	}
	return card.Front
}

// Flip turns the current card over.
func (c *Cursor) Flip() {
	c.flipped = !c.flipped
}

// Next moves forward. It reports false at the last card.
func (c *Cursor) Next() bool {
	if c.index >= len(c.deck.Cards)-1 {
		return false
	}
	c.index++
	c.flipped = false
	return true
}

// Prev moves back. It reports false at the first card.
func (c *Cursor) Prev() bool {
	if c.index == 0 {
		return false
	}
	c.index--
	c.flipped = false
	return true
}

// Position returns the 1-based position and the deck size.
func (c *Cursor) Position() (pos, total int) {
	return c.index + 1, len(c.deck.Cards)
}
