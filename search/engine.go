package search

import (
	"errors"

	"github.com/pipeworks-go/infiniloop/board"
	"github.com/pipeworks-go/infiniloop/propagate"
	"github.com/pipeworks-go/infiniloop/shape"
	"github.com/pipeworks-go/infiniloop/solution"
)

// Sentinel errors for Solve's own argument validation. These are
// distinct from the internal, never-surfaced propagation contradiction
// (spec.md §7 draws exactly this line).
var (
	// ErrNilBoard indicates a nil *board.Board was passed to Solve.
	ErrNilBoard = errors.New("search: board is nil")
	// ErrNilConsumer indicates a nil Consumer was passed to Solve.
	ErrNilConsumer = errors.New("search: consumer is nil")
)

// engine holds the read-only configuration shared by every recursive
// call within one Solve invocation: the board being solved, the
// consumer solutions are delivered to, and the active selection
// policy. Modeled as a dedicated struct — in the manner of the
// teacher's branch-and-bound engine — rather than threading the same
// three values through every recursive call as extra parameters.
type engine struct {
	brd      *board.Board
	consumer Consumer
	selector Selector
}

// Solve enumerates every solution of b, delivering each to consumer in
// the order the brancher discovers it, until the consumer signals Stop
// or the search space is exhausted. It seeds the initial options grid
// from b (honouring shape symmetry) and enters the combined
// propagate/branch recursion (spec.md §4.4, §4.7).
func Solve(b *board.Board, consumer Consumer, opts ...Option) error {
	if b == nil {
		return ErrNilBoard
	}
	if consumer == nil {
		return ErrNilConsumer
	}

	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	e := &engine{brd: b, consumer: consumer, selector: cfg.Selector}
	e.step(board.NewOptionsGrid(b))

	return nil
}

// step is the search entry point: propagate to a fixed point, then
// either extract a solution, branch, or prune. Returns false once the
// consumer has asked to stop; true means "keep searching".
func (e *engine) step(g *board.OptionsGrid) bool {
	if ok := propagate.Propagate(e.brd, g); !ok {
		return true // contradiction: prune this subtree, keep searching elsewhere
	}

	if g.AllResolved() {
		sol := solution.Extract(e.brd, g)

		return e.consumer.Deliver(sol) == Continue
	}

	return e.branch(g)
}

// branch selects one unresolved cell and recurses once per remaining
// rotation, each on an independent copy of g so sibling branches never
// observe each other's state.
func (e *engine) branch(g *board.OptionsGrid) bool {
	x, y, ok := e.selector.Select(g)
	if !ok {
		// AllResolved already returned false, so only a Selector that
		// reports ok=false for an unresolved grid gets here; a
		// well-behaved Selector makes this unreachable.
		return true
	}

	mask := g.At(x, y)
	for i := 0; i < 4; i++ {
		bit := shape.Bit(i)
		if mask&bit == 0 {
			continue
		}

		child := g.Clone()
		child.Set(x, y, bit)
		if !e.step(child) {
			return false
		}
	}

	return true
}
