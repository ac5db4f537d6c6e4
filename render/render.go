// Package render turns puzzles and board states into human-readable
// grids, either plain text or ANSI-colorized for terminals.
package render

import (
	"strings"

	"github.com/vyevs/ansi"

	"github.com/andy327/flow-solver/board"
	"github.com/andy327/flow-solver/geom"
	"github.com/andy327/flow-solver/puzzle"
)

// emptyRune marks uncovered cells in rendered output, matching the
// parser's placeholder.
const emptyRune = puzzle.Placeholder

// palette holds the ANSI foreground color names cycled per flow color,
// in the order the puzzle's sorted colors are assigned to them.
var palette = []string{
	"red", "green", "yellow", "cyan", "orange", "pink", "purple", "chartreuse", "light gray",
}

// Plain renders the state as one rune per cell: the covering color's rune
// or the placeholder. Rows are newline-terminated.
func Plain(st *board.State) string {
	var b strings.Builder
	p := st.Puzzle()
	b.Grow((p.Cols() + 1) * p.Rows())

	for r := 0; r < p.Rows(); r++ {
		for c := 0; c < p.Cols(); c++ {
			if col, ok := st.ColorAt(geom.Position{Row: r, Col: c}); ok {
				b.WriteString(col.String())
			} else {
				b.WriteRune(emptyRune)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// PlainPuzzle renders the static definition: endpoints only.
func PlainPuzzle(p *puzzle.Puzzle) string {
	var b strings.Builder
	b.Grow((p.Cols() + 1) * p.Rows())

	for r := 0; r < p.Rows(); r++ {
		for c := 0; c < p.Cols(); c++ {
			if col, ok := p.EndpointAt(geom.Position{Row: r, Col: c}); ok {
				b.WriteString(col.String())
			} else {
				b.WriteRune(emptyRune)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// ANSI renders the state like Plain but with each flow drawn in its own
// terminal color, ending with a reset.
func ANSI(st *board.State) string {
	var b strings.Builder
	p := st.Puzzle()
	b.Grow((p.Cols() + 1) * p.Rows() * 8)

	colorNames := make(map[puzzle.Color]string, len(p.Colors()))
	for i, col := range p.Colors() {
		colorNames[col] = palette[i%len(palette)]
	}

	for r := 0; r < p.Rows(); r++ {
		for c := 0; c < p.Cols(); c++ {
			if col, ok := st.ColorAt(geom.Position{Row: r, Col: c}); ok {
				b.WriteString(ansi.FGColorName(colorNames[col]))
				b.WriteString(col.String())
			} else {
				b.WriteString(ansi.Clear)
				b.WriteRune(emptyRune)
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString(ansi.Clear)

	return b.String()
}
