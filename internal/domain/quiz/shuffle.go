package quiz

import (
	"math/rand"
	"time"

	"github.com/norsklab/norsk-api/internal/domain"
)

// RandomSource supplies the randomness used to draw items.
// *rand.Rand satisfies it; tests inject a seeded one.
type RandomSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

func defaultSource() RandomSource {
	return rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // not security sensitive
}

// draw picks n items uniformly without replacement using a partial
// Fisher–Yates shuffle over indices. It returns the drawn items in draw
// order and the rest of the pool in its original order.
func draw(pool []domain.VocabularyItem, n int, rng RandomSource) (drawn, rest []domain.VocabularyItem) {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil, clone(pool)
	}

	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	taken := make([]bool, len(pool))
	drawn = make([]domain.VocabularyItem, 0, n)
	for _, i := range idx[:n] {
		taken[i] = true
		drawn = append(drawn, pool[i])
	}

	rest = make([]domain.VocabularyItem, 0, len(pool)-n)
	for i, item := range pool {
		if !taken[i] {
			rest = append(rest, item)
		}
	}
	return drawn, rest
}

func clone(items []domain.VocabularyItem) []domain.VocabularyItem {
	if len(items) == 0 {
		return []domain.VocabularyItem{}
	}
	out := make([]domain.VocabularyItem, len(items))
	copy(out, items)
	return out
}
