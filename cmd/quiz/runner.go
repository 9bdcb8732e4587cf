package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/norsklab/norsk-api/internal/content"
	"github.com/norsklab/norsk-api/internal/domain"
	"github.com/norsklab/norsk-api/internal/domain/quiz"
)

// quitCommand ends a session from any prompt.
const quitCommand = ":q"

// errQuit signals that the user asked to stop.
var errQuit = errors.New("quit")

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// ask prints prompt and reads one line. errQuit is returned on EOF or when
// the user types the quit command.
func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	line := strings.TrimSpace(p.scanner.Text())
	if line == quitCommand {
		return "", errQuit
	}
	return line, nil
}

// quizRunner drives one quiz session from a line-oriented terminal.
type quizRunner struct {
	prompter
	rng quiz.RandomSource
}

func newQuizRunner(in io.Reader, out io.Writer, rng quiz.RandomSource) *quizRunner {
	return &quizRunner{
		prompter: prompter{scanner: bufio.NewScanner(in), out: out},
		rng:      rng,
	}
}

// Run asks every word in pool, batch by batch, until the pool and the
// carried-over mistakes are exhausted or the user quits.
func (r *quizRunner) Run(pool []domain.VocabularyItem) error {
	state, err := quiz.NewSession(pool, r.rng)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Translate each word into Norwegian. Type %s to stop.\n", quitCommand)

	for {
		switch state.Phase {
		case quiz.PhaseInBatch:
			state, err = r.askCurrent(state)
		case quiz.PhaseBatchComplete:
			state, err = r.finishBatch(state)
		default:
			fmt.Fprintln(r.out, "All words done. Bra jobba!")
			return nil
		}

		if errors.Is(err, errQuit) {
			fmt.Fprintln(r.out, "\nHa det!")
			return nil
		}
		if errors.Is(err, quiz.ErrEmptyPool) {
			fmt.Fprintln(r.out, "All words done. Bra jobba!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (r *quizRunner) askCurrent(state quiz.SessionState) (quiz.SessionState, error) {
	item, _ := state.Current()
	prompt := fmt.Sprintf("[%d/%d] %s: ", state.Index+1, len(state.Batch), item.SourceText)

	for {
		input, err := r.ask(prompt)
		if err != nil {
			return state, err
		}

		next, attempt := quiz.SubmitAnswer(state, input)
		if attempt == nil {
			continue
		}
		if attempt.Correct {
			fmt.Fprintln(r.out, "  Riktig!")
		} else {
			fmt.Fprintf(r.out, "  Feil. The answer is %q.\n", item.TargetText)
		}
		return quiz.Advance(next)
	}
}

func (r *quizRunner) finishBatch(state quiz.SessionState) (quiz.SessionState, error) {
	summary, err := quiz.Summary(state)
	if err != nil {
		return state, err
	}

	fmt.Fprintf(r.out, "\nBatch done: %d/%d correct.\n", summary.Score, summary.Total)
	if len(summary.Mistakes) > 0 {
		fmt.Fprintln(r.out, "To review:")
		for _, m := range summary.Mistakes {
			fmt.Fprintf(r.out, "  %s = %s\n", m.SourceText, m.TargetText)
		}
	}

	answer, err := r.ask("Continue? [Y/n] ")
	if err != nil {
		return state, err
	}
	if strings.EqualFold(answer, "n") || strings.EqualFold(answer, "no") {
		return state, errQuit
	}
	return quiz.Continue(state, r.rng)
}

// flashcardRunner pages through a deck.
type flashcardRunner struct {
	prompter
	cursor *content.Cursor
}

func newFlashcardRunner(in io.Reader, out io.Writer, deck content.Deck) *flashcardRunner {
	return &flashcardRunner{
		prompter: prompter{scanner: bufio.NewScanner(in), out: out},
		cursor:   content.NewCursor(deck),
	}
}

// Run shows one side of the current card per prompt. An empty line flips
// the card, n and p move, :q quits.
func (r *flashcardRunner) Run() error {
	fmt.Fprintf(r.out, "Enter flips the card, n/p move, %s stops.\n", quitCommand)
	for {
		pos, total := r.cursor.Position()
		cmd, err := r.ask(fmt.Sprintf("[%d/%d] %s > ", pos, total, r.cursor.Visible()))
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.ToLower(cmd) {
		case "":
			r.cursor.Flip()
		case "n":
			if !r.cursor.Next() {
				fmt.Fprintln(r.out, "Last card.")
			}
		case "p":
			if !r.cursor.Prev() {
				fmt.Fprintln(r.out, "First card.")
			}
		default:
			fmt.Fprintln(r.out, "Use Enter, n, p or :q.")
		}
	}
}
