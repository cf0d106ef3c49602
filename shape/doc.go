// Package shape implements the 4-bit cell-shape algebra that underlies
// the Infinite Loop solver: encoding, rotation, fanout over a set of
// permitted rotations, and symmetry classification for initial search
// options.
//
// What:
//
//   - Code: a 4-bit value whose bits mark connection stubs in the four
//     cardinal directions (bit 0 = north, 1 = east, 2 = south, 3 = west)
//     under a canonical, un-rotated orientation.
//   - Options: a 4-bit mask over the four quarter-turn rotations of a
//     Code that remain permitted during search.
//   - Rotate / RotateHalf / Fanout: the three constant-time, branch-free
//     primitives the propagator and extractor build on.
//
// Why:
//
//   - Every cell in the puzzle has a fixed pipe shape but an unknown
//     rotation; representing both the shape and its allowed rotations
//     as 4-bit values keeps the propagator's hot loop to a handful of
//     bitwise operations per cell per sweep.
//
// Complexity:
//
//   - Rotate, RotateHalf, Fanout, InitialOptions: all O(1).
package shape
