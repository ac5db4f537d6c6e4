package puzzle

import (
	"fmt"
	"sort"

	"github.com/andy327/flow-solver/geom"
)

// Puzzle is the immutable definition of a Flow board. It is safe to share
// between any number of board states; all queries are read-only.
type Puzzle struct {
	rows, cols int
	endpoints  map[Color]Endpoints
	colors     []Color                 // sorted for deterministic iteration
	owner      map[geom.Position]Color // endpoint cell → color
}

// New constructs a Puzzle from dimensions and a color → endpoints mapping.
// The mapping is deep-copied to ensure immutability.
//
// Validation (in order): ErrBadDimensions, ErrNoColors, then per color
// ErrEndpointOutOfBounds, ErrEndpointsEqual, ErrEndpointOverlap.
func New(rows, cols int, endpoints map[Color]Endpoints) (*Puzzle, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, rows, cols)
	}
	if len(endpoints) == 0 {
		return nil, ErrNoColors
	}

	p := &Puzzle{
		rows:      rows,
		cols:      cols,
		endpoints: make(map[Color]Endpoints, len(endpoints)),
		colors:    make([]Color, 0, len(endpoints)),
		owner:     make(map[geom.Position]Color, 2*len(endpoints)),
	}
	for c, eps := range endpoints {
		p.endpoints[c] = eps
		p.colors = append(p.colors, c)
	}
	sort.Slice(p.colors, func(i, j int) bool { return p.colors[i] < p.colors[j] })

	var c Color
	for _, c = range p.colors {
		eps := p.endpoints[c]
		for _, pos := range eps {
			if !p.Contains(pos) {
				return nil, fmt.Errorf("%w: color %q at %v", ErrEndpointOutOfBounds, c, pos)
			}
		}
		if eps[0] == eps[1] {
			return nil, fmt.Errorf("%w: color %q at %v", ErrEndpointsEqual, c, eps[0])
		}
		for _, pos := range eps {
			if prev, taken := p.owner[pos]; taken {
				return nil, fmt.Errorf("%w: colors %q and %q at %v", ErrEndpointOverlap, prev, c, pos)
			}
			p.owner[pos] = c
		}
	}

	return p, nil
}

// Rows returns the number of rows.
func (p *Puzzle) Rows() int { return p.rows }

// Cols returns the number of columns.
func (p *Puzzle) Cols() int { return p.cols }

// Colors returns all colors in ascending order. The slice is a copy.
func (p *Puzzle) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)

	return out
}

// EndpointsOf returns the endpoint pair for color c, and whether c exists.
func (p *Puzzle) EndpointsOf(c Color) (Endpoints, bool) {
	eps, ok := p.endpoints[c]

	return eps, ok
}

// Contains reports whether pos lies within the grid boundaries.
func (p *Puzzle) Contains(pos geom.Position) bool {
	return pos.Row >= 0 && pos.Row < p.rows && pos.Col >= 0 && pos.Col < p.cols
}

// IsBorder reports whether pos is an in-bounds cell on the grid's edge.
func (p *Puzzle) IsBorder(pos geom.Position) bool {
	if !p.Contains(pos) {
		return false
	}

	return pos.Row == 0 || pos.Row == p.rows-1 || pos.Col == 0 || pos.Col == p.cols-1
}

// IsEmpty reports whether pos is an in-bounds cell holding no endpoint.
func (p *Puzzle) IsEmpty(pos geom.Position) bool {
	if !p.Contains(pos) {
		return false
	}
	_, taken := p.owner[pos]

	return !taken
}

// EndpointAt returns the color owning the endpoint at pos, if any.
func (p *Puzzle) EndpointAt(pos geom.Position) (Color, bool) {
	c, ok := p.owner[pos]

	return c, ok
}

// Neighbors returns the in-bounds positions adjacent to pos, at most four,
// in Up/Down/Left/Right order. Out-of-range positions yield an empty slice.
func (p *Puzzle) Neighbors(pos geom.Position) []geom.Position {
	out := make([]geom.Position, 0, 4)
	for _, d := range geom.Directions {
		if n := pos.Move(d); p.Contains(n) {
			out = append(out, n)
		}
	}

	return out
}

// AreNeighbors reports whether a and b are two in-bounds adjacent cells.
func (p *Puzzle) AreNeighbors(a, b geom.Position) bool {
	return p.Contains(a) && p.Contains(b) && a.Adjacent(b)
}

// Cells returns the initial board view: endpoint cells mapped to their
// color, everything else absent. The map is a copy.
func (p *Puzzle) Cells() map[geom.Position]Color {
	out := make(map[geom.Position]Color, len(p.owner))
	for pos, c := range p.owner {
		out[pos] = c
	}

	return out
}

// EmptyCells returns all cells holding no endpoint, in row-major order.
func (p *Puzzle) EmptyCells() []geom.Position {
	out := make([]geom.Position, 0, p.rows*p.cols-len(p.owner))
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			pos := geom.Position{Row: r, Col: c}
			if _, taken := p.owner[pos]; !taken {
				out = append(out, pos)
			}
		}
	}

	return out
}
