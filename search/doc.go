// Package search implements the solver's recursion: the combined
// propagate/branch search entry point, the brancher's selection and
// branch-and-copy strategy, and the consumer interface solutions are
// delivered through.
//
// Control flow (spec.md §4.4):
//
//  1. Run propagate.Propagate. A contradiction prunes this subtree and
//     returns "continue searching" — note the inverted polarity: a
//     contradiction is not a consumer stop request.
//  2. If every interior cell is resolved, extract the solution,
//     deliver it to the consumer, and return the consumer's signal.
//  3. Otherwise select an unresolved cell and recurse once per
//     remaining rotation, on an independent copy of the options grid.
//
// Solve, the package's single entry point, seeds the initial options
// grid from a Board (honouring shape symmetry, spec.md §4.7) and
// enters that recursion.
package search
