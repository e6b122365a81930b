package physics

import (
	"github.com/lixenwraith/planar/core"
)

// Pair is an unordered entity pair stored canonically with A < B,
// so the same two entities always map to the same key
type Pair struct {
	A, B core.Entity
}

// MakePair canonicalizes the entity order
func MakePair(a, b core.Entity) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// PairSet is the tick-scoped set of colliding pairs. The pipeline
// owns two generations: the set being built this tick and the
// previous tick's snapshot the enter/stay/exit diff runs against
type PairSet map[Pair]struct{}

func NewPairSet() PairSet {
	return make(PairSet)
}

func (s PairSet) Add(p Pair) {
	s[p] = struct{}{}
}

func (s PairSet) Has(p Pair) bool {
	_, ok := s[p]
	return ok
}
