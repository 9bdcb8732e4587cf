// Package main implements a terminal front end for the quiz engine and the
// flashcard decks. Nothing is persisted; attempts are only reported on
// screen.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/norsklab/norsk-api/internal/content"
	"github.com/norsklab/norsk-api/internal/domain"
	"github.com/norsklab/norsk-api/internal/domain/quiz"
)

func main() {
	levelFlag := flag.String("level", "A1", "level to practise (A1, A2, B1, B2, C1+)")
	category := flag.String("category", "", "only ask words from this category")
	seed := flag.Int64("seed", 0, "random seed for batch draws (0 uses the clock)")
	contentPath := flag.String("content", "", "word list to use instead of the built-in one (.json, .xlsx, .csv)")
	cards := flag.Bool("flashcards", false, "browse flashcards instead of taking the quiz")
	direction := flag.String("direction", string(content.TargetFirst), "flashcard direction (target_first|source_first)")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, options{
		level:       *levelFlag,
		category:    *category,
		seed:        *seed,
		contentPath: *contentPath,
		flashcards:  *cards,
		direction:   *direction,
	}); err != nil {
		log.Fatalf("quiz: %v", err)
	}
}

type options struct {
	level       string
	category    string
	seed        int64
	contentPath string
	flashcards  bool
	direction   string
}

func run(in io.Reader, out io.Writer, opts options) error {
	level, err := domain.ParseLevel(opts.level)
	if err != nil {
		return err
	}

	catalog, err := content.Load(opts.contentPath)
	if err != nil {
		return err
	}

	if opts.flashcards {
		dir, err := content.ParseDirection(opts.direction)
		if err != nil {
			return err
		}
		deck, err := content.NewDeck(catalog, level, dir)
		if err != nil {
			return fmt.Errorf("no flashcards for %s: %w", level, err)
		}
		return newFlashcardRunner(in, out, deck).Run()
	}

	pool, err := catalog.WordsByLevel(level, opts.category)
	if err != nil {
		return fmt.Errorf("nothing to ask for %s: %w", level, err)
	}

	var rng quiz.RandomSource
	if opts.seed != 0 {
		rng = rand.New(rand.NewSource(opts.seed)) //nolint:gosec // not security sensitive
	}
	return newQuizRunner(in, out, rng).Run(pool)
}
