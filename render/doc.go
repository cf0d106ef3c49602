// Package render formats a solved board as Unicode box-drawing text.
//
// Layout: interior cells occupy a 2-column x 2-row grid. Each cell row
// prints one glyph per cell, with a trailing '─' between cells whose
// shared horizontal edge is set (a space otherwise). Between cell
// rows, an interleaved row prints '│' under each cell whose vertical
// edge to the row below is set (a space otherwise). Trailing
// all-blank lines, and each line's trailing run of blank columns, are
// elided — an empty or unsolvable-but-trivial board renders as "".
package render
