package board

import "github.com/pipeworks-go/infiniloop/shape"

// Board is a fixed Axis x Axis grid of shape.Code. It is immutable
// once construction finishes; the one-cell border and every interior
// cell the parser did not touch default to shape.Empty.
type Board struct {
	cells [Axis][Axis]shape.Code
}

// NewBoard returns an empty board: every cell, border included, holds
// shape.Empty. Callers place pieces with Set before handing the board
// to search.Solve.
func NewBoard() *Board {
	return &Board{}
}

// Set places code at interior coordinate (x, y). Returns ErrOutOfBounds
// if (x, y) is not an interior coordinate.
func (b *Board) Set(x, y int, code shape.Code) error {
	if !IsInterior(x, y) {
		return ErrOutOfBounds
	}
	b.cells[y][x] = code

	return nil
}

// ShapeAt returns the shape.Code stored at (x, y), interior or border.
// Callers outside the package should only ever query interior or
// immediately-adjacent border coordinates, both of which are always
// in range of the backing array.
func (b *Board) ShapeAt(x, y int) shape.Code {
	return b.cells[y][x]
}
