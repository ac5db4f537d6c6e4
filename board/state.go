package board

import (
	"fmt"

	"github.com/andy327/flow-solver/geom"
	"github.com/andy327/flow-solver/puzzle"
)

// Move commits one cell to one color.
type Move struct {
	Color puzzle.Color
	Pos   geom.Position
}

// String formats the move as "color→(row,col)".
func (m Move) String() string {
	return fmt.Sprintf("%s→%v", m.Color, m.Pos)
}

// headRef identifies one of a color's two growing path heads.
type headRef struct {
	color puzzle.Color
	side  int // 0 or 1: index into the color's path pair
}

// State is an immutable snapshot of every color's pair of partially-grown
// paths, plus the move history that produced it (most recent first).
// Derived queries are computed lazily and memoized; a State is never
// mutated once built, so the memos are write-once.
type State struct {
	puz   *puzzle.Puzzle
	paths map[puzzle.Color][2]geom.Path

	moves       []Move // most recent first
	forced      bool   // whether the move that produced this state was forced
	forcedCount int

	// memoized derived views
	cells  map[geom.Position]puzzle.Color
	empty  []geom.Position
	labels map[geom.Position]int
	active map[geom.Position]headRef
	legal  []Move
	valid  *bool
}

// New builds the initial State for a puzzle: every color's two paths are
// single-cell stubs at its endpoints, the move history is empty.
func New(p *puzzle.Puzzle) *State {
	paths := make(map[puzzle.Color][2]geom.Path, len(p.Colors()))
	for _, c := range p.Colors() {
		eps, _ := p.EndpointsOf(c)
		paths[c] = [2]geom.Path{geom.NewPath(eps[0]), geom.NewPath(eps[1])}
	}

	return &State{puz: p, paths: paths}
}

// Puzzle returns the static definition this state derives from.
func (s *State) Puzzle() *puzzle.Puzzle { return s.puz }

// Moves returns a copy of the move history, most recent first.
func (s *State) Moves() []Move {
	out := make([]Move, len(s.moves))
	copy(out, s.moves)

	return out
}

// LastMove returns the move that produced this state, if any.
func (s *State) LastMove() (Move, bool) {
	if len(s.moves) == 0 {
		return Move{}, false
	}

	return s.moves[0], true
}

// Forced reports whether the move that produced this state was forced.
func (s *State) Forced() bool { return s.forced }

// ForcedCount returns how many forced moves the history contains.
func (s *State) ForcedCount() int { return s.forcedCount }

// Heads returns the two current path heads for color c.
func (s *State) Heads(c puzzle.Color) (geom.Position, geom.Position) {
	pair := s.paths[c]

	return pair[0].Head(), pair[1].Head()
}

// PathsOf returns copies of color c's two paths, head first.
func (s *State) PathsOf(c puzzle.Color) (geom.Path, geom.Path) {
	pair := s.paths[c]
	a := make(geom.Path, len(pair[0]))
	copy(a, pair[0])
	b := make(geom.Path, len(pair[1]))
	copy(b, pair[1])

	return a, b
}

// Complete reports whether color c's two heads are already adjacent, i.e.
// the remaining gap is bridgeable and the color needs no further growth.
func (s *State) Complete(c puzzle.Color) bool {
	a, b := s.Heads(c)

	return a.Adjacent(b)
}

// Connected reports whether every color is complete.
func (s *State) Connected() bool {
	for _, c := range s.puz.Colors() {
		if !s.Complete(c) {
			return false
		}
	}

	return true
}

// Filled reports whether every cell on the board is covered by some path.
func (s *State) Filled() bool {
	return len(s.cellMap()) == s.puz.Rows()*s.puz.Cols()
}

// Solved reports whether the state is terminal: fully filled and every
// color's heads mutually adjacent.
func (s *State) Solved() bool {
	return s.Connected() && s.Filled()
}

// Cells merges all path cells of all colors into a color-per-position
// view. The returned map is a copy.
func (s *State) Cells() map[geom.Position]puzzle.Color {
	src := s.cellMap()
	out := make(map[geom.Position]puzzle.Color, len(src))
	for pos, c := range src {
		out[pos] = c
	}

	return out
}

// ColorAt returns the color covering pos, if any.
func (s *State) ColorAt(pos geom.Position) (puzzle.Color, bool) {
	c, ok := s.cellMap()[pos]

	return c, ok
}

// EmptyCells returns every uncovered cell, in row-major order.
// The returned slice is shared; callers must not modify it.
func (s *State) EmptyCells() []geom.Position {
	if s.empty == nil {
		covered := s.cellMap()
		out := make([]geom.Position, 0, s.puz.Rows()*s.puz.Cols()-len(covered))
		for r := 0; r < s.puz.Rows(); r++ {
			for c := 0; c < s.puz.Cols(); c++ {
				pos := geom.Position{Row: r, Col: c}
				if _, taken := covered[pos]; !taken {
					out = append(out, pos)
				}
			}
		}
		s.empty = out
	}

	return s.empty
}

// cellMap lazily merges the paths into the covered-cell view.
func (s *State) cellMap() map[geom.Position]puzzle.Color {
	if s.cells == nil {
		cells := make(map[geom.Position]puzzle.Color)
		for c, pair := range s.paths {
			for _, path := range pair {
				for _, pos := range path {
					cells[pos] = c
				}
			}
		}
		s.cells = cells
	}

	return s.cells
}

// isEmpty reports whether pos is an in-bounds cell covered by no path.
func (s *State) isEmpty(pos geom.Position) bool {
	if !s.puz.Contains(pos) {
		return false
	}
	_, taken := s.cellMap()[pos]

	return !taken
}

// activeHeads maps every endpoint still needing extension to its head
// reference. Heads of complete colors are not active.
func (s *State) activeHeads() map[geom.Position]headRef {
	if s.active == nil {
		active := make(map[geom.Position]headRef)
		for _, c := range s.puz.Colors() {
			if s.Complete(c) {
				continue
			}
			pair := s.paths[c]
			active[pair[0].Head()] = headRef{color: c, side: 0}
			active[pair[1].Head()] = headRef{color: c, side: 1}
		}
		s.active = active
	}

	return s.active
}

// emptyNeighbors returns pos's uncovered in-bounds neighbors, in the
// fixed Up/Down/Left/Right order.
func (s *State) emptyNeighbors(pos geom.Position) []geom.Position {
	out := make([]geom.Position, 0, 4)
	for _, n := range s.puz.Neighbors(pos) {
		if s.isEmpty(n) {
			out = append(out, n)
		}
	}

	return out
}
