// Package infiniloop solves Infinite Loop puzzles: given a grid of
// rotatable pipe pieces, find every rotation assignment that connects
// every piece's stubs into a single set of closed loops with no dead
// stub ends.
//
// The solver is organized as small, independently-testable
// subpackages:
//
//	shape     — rotation and stub-fanout algebra on a 4-bit code
//	board     — the fixed bordered grid and per-cell rotation options
//	propagate — the constraint-propagation fixed-point sweep
//	search    — the branch-and-bound engine that drives propagation
//	solution  — the solved edge set extracted from a resolved grid
//	parse     — reads a board from its text notation
//	render    — formats a solution as Unicode box-drawing text
//	invert    — synthesizes a board from a solution (the inverse of solving)
//
// cmd/infiniloop and cmd/infiniloopc wire these together into runnable
// commands; internal/cli holds the shared process-level plumbing.
package infiniloop
