// Package invert implements the inverse transformation named in
// spec.md §6: given a Solution, synthesize a board.Board whose piece
// at each interior coordinate is the shape implied by that solution's
// incident edges. Solving the resulting board must reproduce the
// original solution among its outputs (spec.md §8's
// unsolve-then-solve round-trip property); this package supplies only
// the "unsolve" half, used by that test.
package invert
