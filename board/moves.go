package board

import (
	"fmt"

	"github.com/andy327/flow-solver/geom"
	"github.com/andy327/flow-solver/puzzle"
)

// LegalMoves returns the full one-step branching set: for every active
// endpoint, every currently-empty neighbor, tagged with that endpoint's
// color. Moves reachable from both of a color's heads appear once.
// The order is deterministic: colors ascending, side 0 before side 1,
// neighbors in Up/Down/Left/Right order. The slice is memoized; callers
// must not modify it.
func (s *State) LegalMoves() []Move {
	if s.legal == nil {
		legal := make([]Move, 0, 16)
		seen := make(map[Move]struct{})
		for _, c := range s.puz.Colors() {
			if s.Complete(c) {
				continue
			}
			pair := s.paths[c]
			for side := 0; side < 2; side++ {
				for _, n := range s.emptyNeighbors(pair[side].Head()) {
					m := Move{Color: c, Pos: n}
					if _, dup := seen[m]; dup {
						continue
					}
					seen[m] = struct{}{}
					legal = append(legal, m)
				}
			}
		}
		s.legal = legal
	}

	return s.legal
}

// MoveForced reports whether m is forced: for either of its color's two
// heads adjacent to m.Pos, that head has exactly one empty neighbor, or
// extending into m.Pos is the only extension of that head that avoids
// creating a dead-end cell beside it. Evaluated independently per head
// and OR-combined.
//
// A move whose cell touches both of its color's heads is never forced:
// the cell stays coverable by either path, so a head whose only open
// neighbor bridges the pair is not actually out of options — the partner
// can close the gap later, after the rest of the board fills in.
func (s *State) MoveForced(m Move) bool {
	if s.Complete(m.Color) {
		return false
	}
	pair := s.paths[m.Color]
	if pair[0].Head().Adjacent(m.Pos) && pair[1].Head().Adjacent(m.Pos) {
		return false
	}
	for side := 0; side < 2; side++ {
		h := pair[side].Head()
		if !h.Adjacent(m.Pos) {
			continue
		}
		empties := s.emptyNeighbors(h)
		if len(empties) == 1 && empties[0] == m.Pos {
			return true
		}
		if len(empties) < 2 || !containsPos(empties, m.Pos) {
			continue
		}
		if s.extensionStrands(m.Color, side, m.Pos) {
			continue // m.Pos itself dooms a neighbor; nothing forced here
		}
		allOthersBad := true
		for _, q := range empties {
			if q != m.Pos && !s.extensionStrands(m.Color, side, q) {
				allOthersBad = false
				break
			}
		}
		if allOthersBad {
			return true
		}
	}

	return false
}

// MoveNecessary reports whether m is provably the only way forward for
// one of its color's heads: that head's single empty neighbor is m.Pos,
// and the cell does not touch the partner head. Necessary moves are the
// subset of forced moves strong enough to condemn the whole state when
// their successor fails validity; the broader MoveForced classification
// is a branching heuristic and carries no such weight.
func (s *State) MoveNecessary(m Move) bool {
	if s.Complete(m.Color) {
		return false
	}
	pair := s.paths[m.Color]
	if pair[0].Head().Adjacent(m.Pos) && pair[1].Head().Adjacent(m.Pos) {
		return false
	}
	for side := 0; side < 2; side++ {
		h := pair[side].Head()
		if !h.Adjacent(m.Pos) {
			continue
		}
		if empties := s.emptyNeighbors(h); len(empties) == 1 && empties[0] == m.Pos {
			return true
		}
	}

	return false
}

// extensionStrands reports whether extending the given head into target
// creates a dead-end cell beside it: some other empty neighbor of the
// head that, in the extended position, fails the viability rule of
// noDeadEnds — fewer than two viable (empty-or-active) neighbors, or no
// empty neighbor at all without both heads of one color alongside. The
// hypothetical mirrors the real successor: the departing head counts as
// covered, target as the new head, and if target touches the partner
// head the color completes and both of its heads go inactive.
func (s *State) extensionStrands(c puzzle.Color, side int, target geom.Position) bool {
	pair := s.paths[c]
	h := pair[side].Head()
	partner := pair[1-side].Head()
	bridges := target.Adjacent(partner)
	active := s.activeHeads()

	for _, cell := range s.emptyNeighbors(h) {
		if cell == target {
			continue
		}
		emptyN, viable := 0, 0
		headsByColor := make(map[headRef]struct{}, 4)
		for _, n := range s.puz.Neighbors(cell) {
			switch {
			case n == h:
				// covered by the extension, no longer a head
			case n == target:
				if !bridges {
					viable++
					headsByColor[headRef{color: c, side: side}] = struct{}{}
				}
			case bridges && n == partner:
				// the color completed; its heads freeze
			case s.isEmpty(n):
				emptyN++
				viable++
			default:
				if ref, isActive := active[n]; isActive {
					viable++
					headsByColor[ref] = struct{}{}
				}
			}
		}
		if viable < 2 {
			return true
		}
		if emptyN == 0 && !hasSameColorPair(headsByColor) {
			return true
		}
	}

	return false
}

// BranchingFactor returns how many extension options the head that m
// extends currently has: the empty-neighbor count of whichever of
// m.Color's heads WithMove would grow. Used by the search controller as
// a most-constrained-first tie-break.
func (s *State) BranchingFactor(m Move) int {
	side, ok := s.extendSide(m)
	if !ok {
		return 0
	}

	return len(s.emptyNeighbors(s.paths[m.Color][side].Head()))
}

// extendSide resolves which of m.Color's two paths the move extends:
// the first whose head is adjacent to m.Pos.
func (s *State) extendSide(m Move) (int, bool) {
	pair, known := s.paths[m.Color]
	if !known {
		return 0, false
	}
	for side := 0; side < 2; side++ {
		if pair[side].Head().Adjacent(m.Pos) {
			return side, true
		}
	}

	return 0, false
}

// WithMove produces the successor state obtained by committing m: the
// adjacent head's path is extended by one cell, the move history gains m
// at the front, and the forced flag records whether MoveForced held for
// m before extension. The receiver is left untouched.
//
// Preconditions: m.Pos must be an empty cell adjacent to one of
// m.Color's two path heads. Violations are programming errors and panic.
func (s *State) WithMove(m Move) *State {
	if !s.isEmpty(m.Pos) {
		panic(fmt.Sprintf("board: move %v targets a non-empty cell", m))
	}
	side, ok := s.extendSide(m)
	if !ok {
		panic(fmt.Sprintf("board: move %v is not adjacent to either path head", m))
	}
	forced := s.MoveForced(m)

	paths := make(map[puzzle.Color][2]geom.Path, len(s.paths))
	for c, pair := range s.paths {
		paths[c] = pair
	}
	pair := paths[m.Color]
	pair[side] = pair[side].Extend(m.Pos)
	paths[m.Color] = pair

	moves := make([]Move, 0, len(s.moves)+1)
	moves = append(moves, m)
	moves = append(moves, s.moves...)

	forcedCount := s.forcedCount
	if forced {
		forcedCount++
	}

	return &State{
		puz:         s.puz,
		paths:       paths,
		moves:       moves,
		forced:      forced,
		forcedCount: forcedCount,
	}
}

func containsPos(cells []geom.Position, pos geom.Position) bool {
	for _, c := range cells {
		if c == pos {
			return true
		}
	}

	return false
}
