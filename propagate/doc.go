// Package propagate implements the constraint-propagation fixed point
// at the heart of the solver: repeatedly cross-checking each interior
// cell's remaining rotations against its four neighbours until no
// cell's options mask changes, or a cell is driven to zero options
// (a contradiction).
//
// Complexity:
//
//   - Each sweep is O(board.Axis^2) with O(1) work per cell.
//   - The number of sweeps until a fixed point is bounded by the total
//     number of bits removable across the grid, also O(board.Axis^2),
//     since the reduction is monotone: options only ever shrink.
package propagate
