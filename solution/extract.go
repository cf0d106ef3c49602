package solution

import (
	"github.com/pipeworks-go/infiniloop/board"
	"github.com/pipeworks-go/infiniloop/shape"
)

// Extract converts a fully-resolved options grid into a Solution. g
// must have board.OptionsGrid.AllResolved() true; behaviour is
// undefined otherwise (Extract reads ResolvedRotation, which assumes
// exactly one bit remains).
//
// By invariant 3 (spec.md §3) a fixed point without contradiction
// guarantees each neighbour agrees on a shared edge, so consulting
// only the west/north-owning cell of each edge (here, always the cell
// with the smaller coordinate) is sufficient and consistent regardless
// of which side is consulted.
func Extract(b *board.Board, g *board.OptionsGrid) *Solution {
	sol := &Solution{}

	for y := board.InteriorMin; y <= board.InteriorMax; y++ {
		for x := board.InteriorMin; x <= board.InteriorMax; x++ {
			placed := shape.Rotate(b.ShapeAt(x, y), g.ResolvedRotation(x, y))

			if x < board.InteriorMax {
				sol.setHEdge(x, y, placed&(1<<shape.East) != 0)
			}
			if y < board.InteriorMax {
				sol.setVEdge(x, y, placed&(1<<shape.South) != 0)
			}
		}
	}

	return sol
}
