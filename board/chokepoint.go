package board

import (
	"github.com/andy327/flow-solver/geom"
	"github.com/andy327/flow-solver/puzzle"
)

// noChokepoint rejects moves that create an un-crossable bottleneck for
// other colors. Triggered only by the most recent move and skipped when
// that move lands on a border cell.
//
// The move's direction of travel is extended forward through consecutive
// empty cells until a non-empty cell or the edge; the W cells so spanned
// form a corridor. In the hypothetical state where the same color also
// fills the whole corridor, every other color whose two heads no longer
// share an empty component would have to cross it — and a corridor of
// width W cannot carry more than W crossing paths.
func (s *State) noChokepoint() bool {
	m, ok := s.LastMove()
	if !ok || s.puz.IsBorder(m.Pos) {
		return true
	}
	pair := s.paths[m.Color]
	side := -1
	for i := 0; i < 2; i++ {
		if pair[i].Head() == m.Pos {
			side = i
			break
		}
	}
	if side < 0 || len(pair[side]) < 2 {
		return true
	}

	dir, err := m.Pos.DirectionFrom(pair[side][1])
	if err != nil {
		return true // unreachable: the predecessor is adjacent by construction
	}

	strip := make([]geom.Position, 0, 4)
	for p := m.Pos.Move(dir); s.isEmpty(p); p = p.Move(dir) {
		strip = append(strip, p)
	}

	hyp := s.withStrip(m.Color, side, strip)
	crossing := 0
	for _, c := range s.puz.Colors() {
		if c == m.Color || hyp.Complete(c) {
			continue
		}
		if !hyp.headsShareComponent(c) {
			crossing++
		}
	}

	return crossing <= len(strip)
}

// withStrip builds the hypothetical state in which the given path is
// extended through every strip cell in order. Used only for component
// queries; history and forced bookkeeping are irrelevant and left empty.
func (s *State) withStrip(c puzzle.Color, side int, strip []geom.Position) *State {
	if len(strip) == 0 {
		return s
	}
	paths := make(map[puzzle.Color][2]geom.Path, len(s.paths))
	for col, pair := range s.paths {
		paths[col] = pair
	}
	pair := paths[c]
	for _, pos := range strip {
		pair[side] = pair[side].Extend(pos)
	}
	paths[c] = pair

	return &State{puz: s.puz, paths: paths}
}
