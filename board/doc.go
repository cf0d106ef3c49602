// Package board provides the fixed-size grid model the Infinite Loop
// solver searches over: a Board of shape.Code values and, per search
// invocation, an OptionsGrid of shape.Options masks over the same
// dimensions.
//
// What:
//
//   - Axis: the fixed maximum grid axis (16), matching the reference
//     implementation. Interior coordinates run 1..Axis-2 inclusive on
//     each dimension; the surrounding one-cell border always holds
//     shape.Empty / options 0x1, which lets the propagator read any
//     neighbour of an interior cell without a bounds check.
//   - Board: the parsed, read-only puzzle. Cells the parser never
//     touched default to shape.Empty, identically to the border.
//   - OptionsGrid: the mutable per-search state, cheap to Clone at
//     every branch point since it is a fixed-size array.
//
// Why:
//
//   - A one-cell empty border removes four conditional bounds checks
//     per cell per propagation sweep, at the cost of a fixed (rather
//     than dynamic) maximum puzzle size.
//
// Complexity:
//
//   - NewBoard, NewOptionsGrid: O(Axis^2).
//   - Clone: O(Axis^2), a single array copy.
package board
