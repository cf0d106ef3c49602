// Package solution defines the Infinite Loop solver's output — a pair
// of edge bitmaps — and Extract, which converts a fully-resolved
// board.OptionsGrid into one.
package solution
