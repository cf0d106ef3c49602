// Package parse turns the puzzle's textual representation into a
// board.Board.
//
// Character set: '1' places a Dead-end, 'C' a Corner, 'S' a Straight,
// '3' a T-junction, '4' a Cross; a space advances the column cursor; a
// newline resets the column cursor and advances the row cursor. The
// cursor begins at interior coordinate (1,1). NUL bytes and any other
// unrecognized rune — including lowercase letters — are silently
// skipped by default, the reference implementation's permissive
// behaviour (spec.md §9). WithStrict switches to a mode that rejects
// unrecognized runes (other than NUL) instead.
//
// Parsing fails with ErrOutOfBounds if placing a recognized piece
// would land outside the board's Axis-2 interior square. Empty input
// and whitespace-only input are valid and produce an empty board.
package parse
