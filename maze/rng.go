package maze

import (
	"math/rand"
	"time"
)

// Source is the randomness a run draws from. *rand.Rand satisfies it.
// Every random choice of a run goes through one Source, so a seeded Source
// reproduces the same maze.
type Source interface {
	// Intn returns a uniform value in [0, n). n is always > 0.
	Intn(n int) int
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ seed from the wall clock; otherwise use the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}

// pick returns a uniformly chosen element of cells. cells must be non-empty.
func pick(rng Source, cells []Cell) Cell {
	return cells[rng.Intn(len(cells))]
}

// shuffleCells performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleCells(a []Cell, rng Source) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
