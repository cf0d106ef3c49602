package solution_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pipeworks-go/infiniloop/board"
	"github.com/pipeworks-go/infiniloop/propagate"
	"github.com/pipeworks-go/infiniloop/shape"
	"github.com/pipeworks-go/infiniloop/solution"
)

func TestExtract_EmptyBoard_NoEdgesSet(t *testing.T) {
	b := board.NewBoard()
	g := board.NewOptionsGrid(b)
	require.True(t, propagate.Propagate(b, g))

	sol := solution.Extract(b, g)
	for y := board.InteriorMin; y <= board.InteriorMax; y++ {
		for x := board.InteriorMin; x <= board.InteriorMax; x++ {
			if x < board.InteriorMax {
				require.False(t, sol.HEdge(x, y))
			}
			if y < board.InteriorMax {
				require.False(t, sol.VEdge(x, y))
			}
		}
	}
}

func TestExtract_AdjacentDeadEnds_SharedEdgeSet(t *testing.T) {
	b := board.NewBoard()
	x, y := board.InteriorMin, board.InteriorMin
	require.NoError(t, b.Set(x, y, shape.DeadEnd))
	require.NoError(t, b.Set(x+1, y, shape.DeadEnd))
	g := board.NewOptionsGrid(b)
	require.True(t, propagate.Propagate(b, g))
	require.True(t, g.AllResolved())

	sol := solution.Extract(b, g)
	require.True(t, sol.HEdge(x, y))
}
