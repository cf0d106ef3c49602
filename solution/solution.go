package solution

import "github.com/pipeworks-go/infiniloop/board"

// Solution records, for each interior edge of the board, whether a
// pipe crosses it. HEdge(x, y) is the edge between (x, y) and
// (x+1, y); VEdge(x, y) is the edge between (x, y) and (x, y+1). An
// edge is set iff both adjacent cells' chosen rotations place a stub
// on it (spec.md §3, invariant 4).
//
// Indices are board interior coordinates directly (board.InteriorMin
// ..board.InteriorMax); the backing arrays are sized to the full fixed
// axis for simplicity rather than the minimal (axis-3)x(axis-2) /
// (axis-2)x(axis-3) bound the spec names, since board.Axis is small
// enough that the difference is immaterial.
type Solution struct {
	hEdges [board.Axis][board.Axis]bool
	vEdges [board.Axis][board.Axis]bool
}

// HEdge reports whether the horizontal edge between (x, y) and
// (x+1, y) carries a pipe.
func (s *Solution) HEdge(x, y int) bool {
	return s.hEdges[y][x]
}

// VEdge reports whether the vertical edge between (x, y) and (x, y+1)
// carries a pipe.
func (s *Solution) VEdge(x, y int) bool {
	return s.vEdges[y][x]
}

func (s *Solution) setHEdge(x, y int, set bool) {
	s.hEdges[y][x] = set
}

func (s *Solution) setVEdge(x, y int, set bool) {
	s.vEdges[y][x] = set
}
