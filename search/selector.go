package search

import (
	"math/rand"

	"github.com/pipeworks-go/infiniloop/board"
)

// Selector picks one unresolved interior cell to branch on. Select
// returns ok=false only when no unresolved cell remains (the caller
// should already have checked board.OptionsGrid.AllResolved first).
// Selection policy affects only the order solutions are delivered in,
// never the set of solutions found (spec.md §4.3, §9).
type Selector interface {
	Select(g *board.OptionsGrid) (x, y int, ok bool)
}

// RowMajorSelector deterministically picks the first unresolved cell
// in row-major order. It is the package default: deterministic
// delivery order makes test assertions reproducible without giving up
// any solution the reference's random policy would find.
type RowMajorSelector struct{}

// Select implements Selector.
func (RowMajorSelector) Select(g *board.OptionsGrid) (x, y int, ok bool) {
	for y := board.InteriorMin; y <= board.InteriorMax; y++ {
		for x := board.InteriorMin; x <= board.InteriorMax; x++ {
			if !g.Resolved(x, y) {
				return x, y, true
			}
		}
	}

	return 0, 0, false
}

// RandomSelector picks uniformly among all unresolved cells, matching
// the reference implementation's selection policy. It carries its own
// *rand.Rand rather than a shared global one: math/rand.Rand is not
// goroutine-safe, and independent solver invocations must not share
// state (spec.md §5).
type RandomSelector struct {
	rng *rand.Rand
}

// defaultRandomSeed is the fixed seed used when NewRandomSelector is
// given 0, matching tsp/rng.go's "seed==0 means use the default"
// convention for reproducible-by-default randomness.
const defaultRandomSeed int64 = 1

// NewRandomSelector returns a RandomSelector with a deterministic,
// seeded *rand.Rand. Passing seed==0 selects a fixed default seed so
// callers who do not care about reproducibility still get it for
// free.
func NewRandomSelector(seed int64) *RandomSelector {
	if seed == 0 {
		seed = defaultRandomSeed
	}

	return &RandomSelector{rng: rand.New(rand.NewSource(seed))}
}

// Select implements Selector by collecting every unresolved cell and
// picking one uniformly at random.
func (s *RandomSelector) Select(g *board.OptionsGrid) (x, y int, ok bool) {
	var candidates []board.Cell
	for cy := board.InteriorMin; cy <= board.InteriorMax; cy++ {
		for cx := board.InteriorMin; cx <= board.InteriorMax; cx++ {
			if !g.Resolved(cx, cy) {
				candidates = append(candidates, board.Cell{X: cx, Y: cy})
			}
		}
	}
	if len(candidates) == 0 {
		return 0, 0, false
	}
	pick := candidates[s.rng.Intn(len(candidates))]

	return pick.X, pick.Y, true
}
