package render

import (
	"strings"

	"github.com/pipeworks-go/infiniloop/board"
	"github.com/pipeworks-go/infiniloop/solution"
)

// Render formats sol as Unicode box-drawing text (see package doc for
// the layout). Returns ErrRenderOverflow if the result would exceed
// opts' MaxBytes.
func Render(sol *solution.Solution, opts ...Option) (string, error) {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	lines := buildLines(sol)
	trimBlankLines(&lines)

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if b.Len() > cfg.MaxBytes {
			return "", ErrRenderOverflow
		}
	}

	return b.String(), nil
}

// buildLines renders the full fixed interior square into alternating
// cell-rows and vertical-edge-rows, one string per output line,
// trailing whitespace trimmed per line.
func buildLines(sol *solution.Solution) []string {
	lines := make([]string, 0, 2*(board.InteriorMax-board.InteriorMin+1)-1)

	for y := board.InteriorMin; y <= board.InteriorMax; y++ {
		var cellRow strings.Builder
		for x := board.InteriorMin; x <= board.InteriorMax; x++ {
			cellRow.WriteRune(glyphs[sol.CellMask(x, y)])
			if x < board.InteriorMax {
				if sol.HEdge(x, y) {
					cellRow.WriteRune('─')
				} else {
					cellRow.WriteByte(' ')
				}
			}
		}
		lines = append(lines, strings.TrimRight(cellRow.String(), " "))

		if y < board.InteriorMax {
			var edgeRow strings.Builder
			for x := board.InteriorMin; x <= board.InteriorMax; x++ {
				if sol.VEdge(x, y) {
					edgeRow.WriteRune('│')
				} else {
					edgeRow.WriteByte(' ')
				}
				if x < board.InteriorMax {
					edgeRow.WriteByte(' ')
				}
			}
			lines = append(lines, strings.TrimRight(edgeRow.String(), " "))
		}
	}

	return lines
}

// trimBlankLines drops trailing fully-blank lines, eliding the space
// an unused or empty board would otherwise occupy.
func trimBlankLines(lines *[]string) {
	s := *lines
	for len(s) > 0 && s[len(s)-1] == "" {
		s = s[:len(s)-1]
	}
	*lines = s
}
