// Package selector chooses the next item to administer during an adaptive
// session. Selection is pure given its inputs and the injected random
// source, so tests can drive it deterministically.
package selector

import (
	"errors"
	"math/rand"
	"time"

	"github.com/abhisek/mathcat/internal/catalog"
)

// ErrNoCandidate is returned when every item for the skill has already
// been administered.
var ErrNoCandidate = errors.New("selector: no candidate items remain")

// Pool is the item source the selector draws from. *catalog.Catalog
// satisfies it.
type Pool interface {
	FindNear(skillID string, target float64, exclude map[string]bool) []catalog.Item
	FindClosest(skillID string, target float64, exclude map[string]bool) (catalog.Item, bool)
}

// Selector picks items near a target difficulty, preferring the most
// discriminating candidates.
type Selector struct {
	rng *rand.Rand
}

// New returns a Selector using the given random source. A nil rng gets a
// time-seeded source.
func New(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// Next returns the next item for the skill: among unadministered items
// within the difficulty window around target, the one with the highest
// discrimination, ties broken uniformly at random. When the window is
// empty it falls back to the item closest to target. Items in exclude are
// never returned; an exhausted pool yields ErrNoCandidate.
func (s *Selector) Next(pool Pool, skillID string, target float64, exclude map[string]bool) (catalog.Item, error) {
	window := pool.FindNear(skillID, target, exclude)
	if len(window) > 0 {
		best := []catalog.Item{window[0]}
		for _, it := range window[1:] {
			switch {
			case it.Discrimination > best[0].Discrimination:
				best = []catalog.Item{it}
			case it.Discrimination == best[0].Discrimination:
				best = append(best, it)
			}
		}
		return best[s.rng.Intn(len(best))], nil
	}

	it, ok := pool.FindClosest(skillID, target, exclude)
	if !ok {
		return catalog.Item{}, ErrNoCandidate
	}
	return it, nil
}
