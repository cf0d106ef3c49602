package invert

import (
	"github.com/pipeworks-go/infiniloop/board"
	"github.com/pipeworks-go/infiniloop/solution"
)

// Unsolve synthesizes a board whose piece at each interior coordinate
// is the 4-bit stub mask sol's incident edges imply there; that mask
// doubles as the shape.Code to place, since a cell's canonical shape
// and its placed stub pattern coincide once its rotation is folded in.
// Cells with no incident edges are left at their board default
// (shape.Empty), so Set is skipped for a zero mask.
func Unsolve(sol *solution.Solution) *board.Board {
	b := board.NewBoard()
	for y := board.InteriorMin; y <= board.InteriorMax; y++ {
		for x := board.InteriorMin; x <= board.InteriorMax; x++ {
			mask := sol.CellMask(x, y)
			if mask == 0 {
				continue
			}
			// Set cannot fail here: (x, y) ranges only over interior
			// coordinates.
			_ = b.Set(x, y, mask)
		}
	}

	return b
}
