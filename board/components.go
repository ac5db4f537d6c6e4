package board

import (
	"github.com/andy327/flow-solver/geom"
	"github.com/andy327/flow-solver/puzzle"
)

// componentLabels assigns every empty cell an integer identifying which
// maximal connected region of empty cells it belongs to. Every empty cell
// starts with its own id in enumeration order; adjacent empty cells then
// repeatedly exchange the smaller id until a fixed point is reached — the
// label-propagation closure of connectivity. Recomputed fresh per state,
// over the shrinking set of empty cells only.
func (s *State) componentLabels() map[geom.Position]int {
	if s.labels == nil {
		cells := s.EmptyCells()
		labels := make(map[geom.Position]int, len(cells))
		for i, pos := range cells {
			labels[pos] = i
		}
		for changed := true; changed; {
			changed = false
			for _, pos := range cells {
				for _, n := range s.puz.Neighbors(pos) {
					ln, ok := labels[n]
					if !ok {
						continue
					}
					switch {
					case ln < labels[pos]:
						labels[pos] = ln
						changed = true
					case labels[pos] < ln:
						labels[n] = labels[pos]
						changed = true
					}
				}
			}
		}
		s.labels = labels
	}

	return s.labels
}

// headComponents returns the set of empty-component labels adjacent to
// the given head position.
func (s *State) headComponents(h geom.Position) map[int]struct{} {
	labels := s.componentLabels()
	out := make(map[int]struct{}, 4)
	for _, n := range s.emptyNeighbors(h) {
		out[labels[n]] = struct{}{}
	}

	return out
}

// headsShareComponent reports whether color c's two heads have at least
// one empty-cell component in common among their neighbors. Only
// meaningful for incomplete colors.
func (s *State) headsShareComponent(c puzzle.Color) bool {
	a, b := s.Heads(c)
	compsA := s.headComponents(a)
	for label := range s.headComponents(b) {
		if _, shared := compsA[label]; shared {
			return true
		}
	}

	return false
}
