package puzzle

import (
	"fmt"
	"strings"

	"github.com/andy327/flow-solver/geom"
)

// Placeholder is the rune marking an empty cell in ASCII puzzle input.
const Placeholder = '.'

// Parse builds a Puzzle from an ASCII grid. Each line is one row; the
// Placeholder rune denotes an empty cell and any other rune denotes one
// endpoint of that rune's color. Every distinct non-placeholder rune must
// appear in exactly two cells, otherwise the input is malformed.
//
// Leading and trailing blank lines are ignored; a trailing '\r' per line
// is stripped so files with CRLF endings parse the same way.
//
// Errors: ErrEmptyGrid, ErrNonRectangular, ErrEndpointCount, plus the
// constructor errors from New.
func Parse(input string) (*Puzzle, error) {
	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len([]rune(lines[0])) == 0 {
		return nil, ErrEmptyGrid
	}

	rows := make([][]rune, len(lines))
	cols := len([]rune(lines[0]))
	for i, line := range lines {
		rows[i] = []rune(line)
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(rows[i]), cols)
		}
	}

	found := make(map[Color][]geom.Position)
	for r, row := range rows {
		for c, ch := range row {
			if ch == Placeholder {
				continue
			}
			col := Color(ch)
			found[col] = append(found[col], geom.Position{Row: r, Col: c})
		}
	}

	endpoints := make(map[Color]Endpoints, len(found))
	for col, cells := range found {
		if len(cells) != 2 {
			return nil, fmt.Errorf("%w: color %q appears %d times", ErrEndpointCount, col, len(cells))
		}
		endpoints[col] = Endpoints{cells[0], cells[1]}
	}

	return New(len(rows), cols, endpoints)
}
