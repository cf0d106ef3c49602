package board

import (
	"math/bits"

	"github.com/pipeworks-go/infiniloop/shape"
)

// OptionsGrid mirrors Board's dimensions, holding the current set of
// permitted rotations per cell during a search. Border cells always
// carry shape.Options(0x1): the empty border shape's one orientation.
type OptionsGrid struct {
	cells [Axis][Axis]shape.Options
}

// NewOptionsGrid seeds the initial options grid from b, classifying
// every interior cell's shape by symmetry (shape.InitialOptions) and
// fixing every border cell to 0x1. This is the search driver's "seed
// initial options" step (spec.md §4.7).
func NewOptionsGrid(b *Board) *OptionsGrid {
	var g OptionsGrid
	for y := 0; y < Axis; y++ {
		for x := 0; x < Axis; x++ {
			if IsInterior(x, y) {
				g.cells[y][x] = shape.InitialOptions(b.ShapeAt(x, y))
			} else {
				g.cells[y][x] = 0x1
			}
		}
	}

	return &g
}

// At returns the current options mask at (x, y).
func (g *OptionsGrid) At(x, y int) shape.Options {
	return g.cells[y][x]
}

// Set overwrites the options mask at (x, y).
func (g *OptionsGrid) Set(x, y int, opts shape.Options) {
	g.cells[y][x] = opts
}

// Clone returns an independent copy, safe to mutate without affecting
// g. The grid is a fixed-size array, so this is a single cheap value
// copy regardless of how much of the board the puzzle actually uses.
func (g *OptionsGrid) Clone() *OptionsGrid {
	v := *g

	return &v
}

// Resolved reports whether (x, y) has exactly one remaining rotation.
func (g *OptionsGrid) Resolved(x, y int) bool {
	return bits.OnesCount8(uint8(g.cells[y][x])) == 1
}

// AllResolved reports whether every interior cell is Resolved.
func (g *OptionsGrid) AllResolved() bool {
	for y := InteriorMin; y <= InteriorMax; y++ {
		for x := InteriorMin; x <= InteriorMax; x++ {
			if !g.Resolved(x, y) {
				return false
			}
		}
	}

	return true
}

// ResolvedRotation returns the single quarter-turn count still
// permitted at (x, y). Callers must only call this once Resolved(x, y)
// is true.
func (g *OptionsGrid) ResolvedRotation(x, y int) int {
	return bits.TrailingZeros8(uint8(g.cells[y][x]))
}
