package quiz

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/norsklab/norsk-api/internal/domain"
)

// firstSource always picks the lowest remaining index, so draws follow
// pool order.
type firstSource struct{}

func (firstSource) Intn(int) int { return 0 }

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func makeItems(t *testing.T, n int) []domain.VocabularyItem {
	t.Helper()
	items := make([]domain.VocabularyItem, n)
	for i := range items {
		items[i] = domain.VocabularyItem{
			ID:         fmt.Sprintf("w%02d", i),
			SourceText: fmt.Sprintf("english %d", i),
			TargetText: fmt.Sprintf("norsk %d", i),
			Level:      domain.LevelA1,
			Category:   "test",
		}
	}
	return items
}

func ids(items []domain.VocabularyItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

// answerAll walks a batch answering each item correctly unless its ID is in wrong.
func answerAll(t *testing.T, s SessionState, wrong map[string]bool) SessionState {
	t.Helper()
	for s.Phase == PhaseInBatch {
		item, _ := s.Current()
		input := item.TargetText
		if wrong[item.ID] {
			input = "feil"
		}
		var ev *AttemptEvent
		s, ev = SubmitAnswer(s, input)
		if ev == nil {
			t.Fatalf("expected attempt event for %s", item.ID)
		}
		var err error
		s, err = Advance(s)
		if err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	return s
}
