package propagate

import (
	"github.com/pipeworks-go/infiniloop/board"
	"github.com/pipeworks-go/infiniloop/shape"
)

// Propagate reduces g to a fixed point under local edge-agreement
// constraints, mutating it in place. Returns false the instant any
// cell's options mask is driven to zero (a contradiction, which
// prunes the current search branch); true once a sweep produces no
// further change.
//
// Sweep order is row-major and deterministic. It affects only how
// many sweeps are needed to reach the fixed point, never the fixed
// point itself, since the reduction is monotone.
func Propagate(b *board.Board, g *board.OptionsGrid) bool {
	for {
		changed, ok := sweep(b, g)
		if !ok {
			return false
		}
		if !changed {
			return true
		}
	}
}

// sweep performs one full pass over every interior cell, returning
// whether any cell's mask changed and whether the grid remains
// contradiction-free.
func sweep(b *board.Board, g *board.OptionsGrid) (changed, ok bool) {
	for y := board.InteriorMin; y <= board.InteriorMax; y++ {
		for x := board.InteriorMin; x <= board.InteriorMax; x++ {
			old := g.At(x, y)
			maySet, mayClear := neighborMasks(b, g, x, y)

			var next shape.Options
			for i := 0; i < 4; i++ {
				bit := shape.Bit(i)
				if old&bit == 0 {
					continue
				}
				c := shape.Rotate(b.ShapeAt(x, y), i)
				if c&^maySet == 0 && (c|mayClear) == 0xf {
					next |= bit
				}
			}

			if next == 0 {
				return changed, false
			}
			if next != old {
				g.Set(x, y, next)
				changed = true
			}
		}
	}

	return changed, true
}

// neighbor describes one of the four cardinal offsets from a cell,
// and the bit (in that cell's own frame) the neighbour's facing stub
// corresponds to.
type neighbor struct {
	dx, dy int
	bit    int
}

var neighbors = [4]neighbor{
	{0, -1, shape.North},
	{1, 0, shape.East},
	{0, 1, shape.South},
	{-1, 0, shape.West},
}

// neighborMasks computes, from (x, y)'s own frame, the set of
// directions that may carry a stub (maySet) and the set of directions
// that may carry a gap (mayClear) under some remaining orientation of
// each neighbour.
//
// For a neighbour in direction dir, the edge it shares with (x, y) is
// that neighbour's opposite-facing stub: rotating the neighbour's
// fanout by two quarter turns brings that opposite-facing bit back to
// position dir, where it is masked in alongside the other three
// neighbours' contributions.
func neighborMasks(b *board.Board, g *board.OptionsGrid, x, y int) (maySet, mayClear shape.Code) {
	for _, n := range neighbors {
		nx, ny := x+n.dx, y+n.dy
		nShape := b.ShapeAt(nx, ny)
		nOpts := g.At(nx, ny)

		setFan := shape.RotateHalf(shape.Fanout(nShape, nOpts))
		clearFan := shape.RotateHalf(shape.Fanout(nShape^0xf, nOpts))

		bit := shape.Code(1) << uint(n.bit)
		maySet |= setFan & bit
		mayClear |= clearFan & bit
	}

	return maySet, mayClear
}
