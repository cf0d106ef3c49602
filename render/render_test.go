package render_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pipeworks-go/infiniloop/board"
	"github.com/pipeworks-go/infiniloop/propagate"
	"github.com/pipeworks-go/infiniloop/render"
	"github.com/pipeworks-go/infiniloop/shape"
	"github.com/pipeworks-go/infiniloop/solution"
)

func TestRender_EmptySolution(t *testing.T) {
	text, err := render.Render(&solution.Solution{})
	require.NoError(t, err)
	require.Equal(t, "", text)
}

func TestRender_AdjacentDeadEnds(t *testing.T) {
	b := board.NewBoard()
	x, y := board.InteriorMin, board.InteriorMin
	require.NoError(t, b.Set(x, y, shape.DeadEnd))
	require.NoError(t, b.Set(x+1, y, shape.DeadEnd))
	g := board.NewOptionsGrid(b)
	require.True(t, propagate.Propagate(b, g))
	sol := solution.Extract(b, g)

	text, err := render.Render(sol)
	require.NoError(t, err)
	require.Equal(t, "╶─╴", text)
}

func TestRender_Overflow(t *testing.T) {
	b := board.NewBoard()
	x, y := board.InteriorMin, board.InteriorMin
	require.NoError(t, b.Set(x, y, shape.DeadEnd))
	require.NoError(t, b.Set(x+1, y, shape.DeadEnd))
	g := board.NewOptionsGrid(b)
	require.True(t, propagate.Propagate(b, g))
	sol := solution.Extract(b, g)

	_, err := render.Render(sol, render.WithMaxBytes(1))
	require.ErrorIs(t, err, render.ErrRenderOverflow)
}
