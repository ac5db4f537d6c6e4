package geom

import (
	"errors"
	"fmt"
)

// ErrNotAdjacent indicates a direction lookup between non-adjacent positions.
var ErrNotAdjacent = errors.New("geom: positions are not grid-adjacent")

// Direction is one of the four cardinal grid directions.
type Direction int

const (
	// Up decreases the row index.
	Up Direction = iota
	// Down increases the row index.
	Down
	// Left decreases the column index.
	Left
	// Right increases the column index.
	Right
)

// Directions lists all four directions in a fixed, deterministic order.
// Every neighbor enumeration in the solver iterates in this order so that
// move generation and tie-breaking stay reproducible.
var Directions = [4]Direction{Up, Down, Left, Right}

// String returns the human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Position is a (row, col) grid coordinate. Equality is by value.
type Position struct {
	Row, Col int
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move returns the position adjacent to p in direction d.
func (p Position) Move(d Direction) Position {
	switch d {
	case Up:
		return Position{Row: p.Row - 1, Col: p.Col}
	case Down:
		return Position{Row: p.Row + 1, Col: p.Col}
	case Left:
		return Position{Row: p.Row, Col: p.Col - 1}
	default:
		return Position{Row: p.Row, Col: p.Col + 1}
	}
}

// DirectionFrom reports which direction leads from other to p.
// Returns ErrNotAdjacent if the two positions are not grid-adjacent
// (including the case p == other).
func (p Position) DirectionFrom(other Position) (Direction, error) {
	for _, d := range Directions {
		if other.Move(d) == p {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: %v and %v", ErrNotAdjacent, other, p)
}

// Adjacent reports whether p and other share a grid edge.
func (p Position) Adjacent(other Position) bool {
	dr, dc := p.Row-other.Row, p.Col-other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr+dc == 1
}

// Path is an ordered sequence of positions. The first element is the
// most-recently-added cell (the "head"). A Path is never empty once built
// via NewPath, and is treated as immutable: Extend returns a new value.
type Path []Position

// NewPath returns a single-cell path rooted at start.
func NewPath(start Position) Path {
	return Path{start}
}

// Head returns the most-recently-added position.
func (p Path) Head() Position {
	return p[0]
}

// Extend returns a new Path with pos prepended as the new head.
// The receiver is left untouched.
func (p Path) Extend(pos Position) Path {
	next := make(Path, 0, len(p)+1)
	next = append(next, pos)
	next = append(next, p...)

	return next
}

// Contains reports whether pos is one of the path's cells.
func (p Path) Contains(pos Position) bool {
	for _, cell := range p {
		if cell == pos {
			return true
		}
	}

	return false
}
