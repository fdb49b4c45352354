package cube

import (
	"fmt"
	"math/rand"
)

// ShuffleStep records one applied move and the state immediately after
// it, in application order.
type ShuffleStep struct {
	Move  Move
	State string
}

// Shuffle chooses k ~ Uniform(lo, hi), applies k uniformly random moves
// (family, index, and direction chosen independently) and returns the
// ordered move list with post-move states. It fails with
// ErrInvalidBounds if lo < 0, hi < 0, or lo > hi, leaving c untouched.
func (c *Cube) Shuffle(lo, hi int, rng *rand.Rand) ([]ShuffleStep, error) {
	if lo < 0 || hi < 0 || lo > hi {
		return nil, fmt.Errorf("%w: lo=%d hi=%d", ErrInvalidBounds, lo, hi)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	k := lo
	if hi > lo {
		k += rng.Intn(hi - lo + 1)
	}

	steps := make([]ShuffleStep, 0, k)
	for i := 0; i < k; i++ {
		pair := catalogOrder[rng.Intn(len(catalogOrder))]
		m := Move{Family: pair.Family, Index: rng.Intn(c.N), Direction: pair.Direction}
		if err := c.ApplyMove(m); err != nil {
			// Unreachable: pair.Direction always matches pair.Family and
			// the index is drawn from 0..N-1, so ApplyMove cannot fail.
			return nil, err
		}
		steps = append(steps, ShuffleStep{Move: m, State: c.State()})
	}
	return steps, nil
}
