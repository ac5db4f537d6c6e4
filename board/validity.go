package board

// Valid reports whether this state can still lead to a solution, as far
// as six independent necessary conditions can tell. Evaluated once per
// state and memoized; the conjunction short-circuits cheapest-first.
func (s *State) Valid() bool {
	if s.valid == nil {
		v := s.noFoldedPath() &&
			s.noStrandedPaths() &&
			s.noDeadEnds() &&
			s.componentsLegal() &&
			s.noStrandedRegions() &&
			s.noChokepoint()
		s.valid = &v
	}

	return *s.valid
}

// noDeadEnds requires every still-empty cell to have more than one viable
// (empty-or-active) neighbor; a cell with no empty neighbor at all must
// additionally border both active endpoints of a single color, so the
// cell can close that color's loop. A cell failing both can never be
// covered by any path.
func (s *State) noDeadEnds() bool {
	active := s.activeHeads()
	for _, cell := range s.EmptyCells() {
		emptyN, viable := 0, 0
		headsByColor := make(map[headRef]struct{}, 4)
		for _, n := range s.puz.Neighbors(cell) {
			if s.isEmpty(n) {
				emptyN++
				viable++
				continue
			}
			if ref, isActive := active[n]; isActive {
				viable++
				headsByColor[ref] = struct{}{}
			}
		}
		if viable < 2 {
			return false
		}
		if emptyN == 0 && !hasSameColorPair(headsByColor) {
			return false
		}
	}

	return true
}

// hasSameColorPair reports whether some color contributes both of its
// heads to the given head set.
func hasSameColorPair(heads map[headRef]struct{}) bool {
	for ref := range heads {
		other := headRef{color: ref.color, side: 1 - ref.side}
		if _, both := heads[other]; both {
			return true
		}
	}

	return false
}

// noStrandedPaths requires, for every incomplete color, that each head
// has at least one empty neighbor. A head with no way to extend (and not
// yet adjacent to its partner) can never finish.
func (s *State) noStrandedPaths() bool {
	for _, c := range s.puz.Colors() {
		if s.Complete(c) {
			continue
		}
		a, b := s.Heads(c)
		if len(s.emptyNeighbors(a)) == 0 || len(s.emptyNeighbors(b)) == 0 {
			return false
		}
	}

	return true
}

// noFoldedPath checks only the most recent move: the newly placed cell
// may border at most one earlier cell of its own path besides the cell
// it extended from. Running alongside itself once is how a path packs
// tightly; a second extra self-adjacency is a wasted loop that cannot be
// part of a simple path.
func (s *State) noFoldedPath() bool {
	m, ok := s.LastMove()
	if !ok {
		return true
	}
	pair := s.paths[m.Color]
	for side := 0; side < 2; side++ {
		path := pair[side]
		if path.Head() != m.Pos {
			continue
		}
		own := 0
		for _, n := range s.puz.Neighbors(m.Pos) {
			if path.Contains(n) {
				own++
			}
		}

		// own counts the predecessor plus any earlier self-adjacency.
		return own <= 2
	}

	return true
}

// componentsLegal requires, for every incomplete color, that its two
// heads share at least one empty-cell component among their neighbors.
// If the heads' reachable empty regions never touch, no path can bridge
// them.
func (s *State) componentsLegal() bool {
	for _, c := range s.puz.Colors() {
		if s.Complete(c) {
			continue
		}
		if !s.headsShareComponent(c) {
			return false
		}
	}

	return true
}

// noStrandedRegions requires every maximal connected region of empty
// cells to be bordered by both active endpoints of at least one color.
// Paths only grow at heads, so a region touched by fewer than two
// same-colored endpoints can never be filled.
func (s *State) noStrandedRegions() bool {
	labels := s.componentLabels()
	if len(labels) == 0 {
		return true
	}
	active := s.activeHeads()

	borders := make(map[int]map[headRef]struct{})
	for _, cell := range s.EmptyCells() {
		label := labels[cell]
		for _, n := range s.puz.Neighbors(cell) {
			ref, isActive := active[n]
			if !isActive {
				continue
			}
			if borders[label] == nil {
				borders[label] = make(map[headRef]struct{}, 4)
			}
			borders[label][ref] = struct{}{}
		}
	}

	seen := make(map[int]struct{}, len(borders))
	for _, label := range labels {
		if _, done := seen[label]; done {
			continue
		}
		seen[label] = struct{}{}
		if !hasSameColorPair(borders[label]) {
			return false
		}
	}

	return true
}
