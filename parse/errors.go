package parse

import "errors"

// Sentinel errors returned by Parse.
var (
	// ErrOutOfBounds indicates a piece would be placed outside the
	// board's interior square.
	ErrOutOfBounds = errors.New("parse: piece position exceeds board interior")
	// ErrUnrecognizedChar indicates, in strict mode only, a rune other
	// than NUL that is not part of the puzzle character set.
	ErrUnrecognizedChar = errors.New("parse: unrecognized character")
)
