package parse

import (
	"github.com/pipeworks-go/infiniloop/board"
	"github.com/pipeworks-go/infiniloop/shape"
)

// Parse converts input into a board.Board, advancing a cursor over
// input's runes: recognized piece characters place a piece at the
// cursor and advance it one column; a space advances the column
// cursor without placing anything; a newline resets the column cursor
// to board.InteriorMin and advances the row cursor. The cursor begins
// at (board.InteriorMin, board.InteriorMin).
func Parse(input string, opts ...Option) (*board.Board, error) {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	b := board.NewBoard()
	x, y := board.InteriorMin, board.InteriorMin

	for _, r := range input {
		switch {
		case r == '\n':
			x = board.InteriorMin
			y++
			continue
		case r == ' ':
			x++
			continue
		case r == 0:
			continue
		}

		code, recognized := shapeFor(r)
		if !recognized {
			if cfg.Strict {
				return nil, ErrUnrecognizedChar
			}
			continue
		}

		if !board.IsInterior(x, y) {
			return nil, ErrOutOfBounds
		}
		// Set cannot fail here: IsInterior was just checked.
		_ = b.Set(x, y, code)
		x++
	}

	return b, nil
}

// shapeFor maps a single recognized puzzle character to its
// shape.Code. Letters are matched uppercase only; lowercase variants
// are unrecognized runes, handled like any other via the permissive
// skip / strict reject path.
func shapeFor(r rune) (shape.Code, bool) {
	switch r {
	case '1':
		return shape.DeadEnd, true
	case 'C':
		return shape.Corner, true
	case 'S':
		return shape.Straight, true
	case '3':
		return shape.TJunction, true
	case '4':
		return shape.Cross, true
	default:
		return shape.Empty, false
	}
}
