package solution

import (
	"github.com/pipeworks-go/infiniloop/board"
	"github.com/pipeworks-go/infiniloop/shape"
)

// CellMask derives the 4-bit {north, east, south, west} stub pattern
// implied at interior coordinate (x, y) by its incident edges: the
// same computation the inverse transformation (spec.md §6) and the
// renderer both need, kept here once since Solution owns the edges it
// reads.
func (s *Solution) CellMask(x, y int) shape.Code {
	var mask shape.Code
	if y > board.InteriorMin && s.VEdge(x, y-1) {
		mask |= 1 << shape.North
	}
	if x < board.InteriorMax && s.HEdge(x, y) {
		mask |= 1 << shape.East
	}
	if y < board.InteriorMax && s.VEdge(x, y) {
		mask |= 1 << shape.South
	}
	if x > board.InteriorMin && s.HEdge(x-1, y) {
		mask |= 1 << shape.West
	}

	return mask
}
