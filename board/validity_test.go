package board

import (
	"testing"

	"github.com/andy327/flow-solver/geom"
	"github.com/andy327/flow-solver/puzzle"
)

// mustState parses a grid and applies the given moves.
func mustState(t *testing.T, grid string, moves ...Move) *State {
	t.Helper()
	p, err := puzzle.Parse(grid)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	s := New(p)
	for _, m := range moves {
		s = s.WithMove(m)
	}

	return s
}

func at(r, c int) geom.Position { return geom.Position{Row: r, Col: c} }

// TestNoDeadEnds_Corner isolates the dead-end predicate: after A grows
// (1,0)→(1,1), corner (0,0) is left with a single viable neighbor while
// every other check still passes.
//
//	...        ...
//	A..   →    AA.
//	..A        ..A
func TestNoDeadEnds_Corner(t *testing.T) {
	s := mustState(t, "...\nA..\n..A", Move{Color: 'A', Pos: at(1, 1)})
	if s.noDeadEnds() {
		t.Error("noDeadEnds = true; want false for the sealed corner")
	}
	if !s.noStrandedPaths() || !s.noFoldedPath() || !s.componentsLegal() ||
		!s.noStrandedRegions() || !s.noChokepoint() {
		t.Error("only the dead-end predicate should fail here")
	}
	if s.Valid() {
		t.Error("Valid = true; want false")
	}
}

// TestNoStrandedPaths_SealedHead verifies that a head with no empty
// neighbor (and no adjacent partner) fails the stranded-path check:
// completing B walls A's corner endpoint in.
//
//	AB..        AB..
//	B...   →    BB..
//	....        ....
//	...A        ...A
func TestNoStrandedPaths_SealedHead(t *testing.T) {
	s := mustState(t, "AB..\nB...\n....\n...A", Move{Color: 'B', Pos: at(1, 1)})
	if !s.Complete('B') {
		t.Fatal("B should be complete after the bridging move")
	}
	if s.noStrandedPaths() {
		t.Error("noStrandedPaths = true; want false for the sealed A head")
	}
	if !s.noDeadEnds() || !s.noFoldedPath() || !s.noChokepoint() {
		t.Error("dead-end, fold and chokepoint checks should still pass")
	}
	if s.Valid() {
		t.Error("Valid = true; want false")
	}
}

// TestNoFoldedPath_WastedLoop drives a single path into a hook that
// touches two of its own earlier cells besides the predecessor.
//
//	A..      AAA
//	...  →   AAA
//	..A      ..A
func TestNoFoldedPath_WastedLoop(t *testing.T) {
	s := mustState(t, "A..\n...\n..A",
		Move{Color: 'A', Pos: at(1, 0)},
		Move{Color: 'A', Pos: at(1, 1)},
		Move{Color: 'A', Pos: at(1, 2)},
		Move{Color: 'A', Pos: at(0, 2)},
		Move{Color: 'A', Pos: at(0, 1)},
	)
	if s.noFoldedPath() {
		t.Error("noFoldedPath = true; want false for the closed hook")
	}
	if s.Valid() {
		t.Error("Valid = true; want false")
	}
}

// TestNoFoldedPath_TightPacking confirms that running alongside the own
// path once — the normal serpentine pattern — is not a fold.
func TestNoFoldedPath_TightPacking(t *testing.T) {
	s := mustState(t, "A..\n...\n..A",
		Move{Color: 'A', Pos: at(0, 1)},
		Move{Color: 'A', Pos: at(1, 1)},
		Move{Color: 'A', Pos: at(1, 0)},
	)
	// (1,0) borders predecessor (1,1) and earlier cell (0,0): one extra.
	if !s.noFoldedPath() {
		t.Error("noFoldedPath = false; want true for single self-adjacency")
	}
}

// TestComponentsLegal_SplitHeads completes a B wall through the middle
// column so A's two heads face disjoint empty regions.
//
//	.B.        .B.
//	A.A   →    ABA
//	.B.        .B.
func TestComponentsLegal_SplitHeads(t *testing.T) {
	s := mustState(t, ".B.\nA.A\n.B.", Move{Color: 'B', Pos: at(1, 1)})
	if s.componentsLegal() {
		t.Error("componentsLegal = true; want false for split head regions")
	}
	if !s.noStrandedPaths() || !s.noFoldedPath() {
		t.Error("stranded-path and fold checks should still pass")
	}
	if s.Valid() {
		t.Error("Valid = true; want false")
	}
}

// TestNoStrandedRegions_NoActiveBorder completes the only color while
// most of the board is still empty: the leftover region is bordered by
// no active endpoint at all and can never be filled.
//
//	A..        AA.
//	.A.   →    .A.
//	...        ...
func TestNoStrandedRegions_NoActiveBorder(t *testing.T) {
	s := mustState(t, "A..\n.A.\n...", Move{Color: 'A', Pos: at(0, 1)})
	if !s.Connected() {
		t.Fatal("A should be complete after the bridging move")
	}
	if s.noStrandedRegions() {
		t.Error("noStrandedRegions = true; want false with no active endpoints")
	}
	if !s.noStrandedPaths() || !s.componentsLegal() || !s.noFoldedPath() || !s.noChokepoint() {
		t.Error("predicates over incomplete colors should pass vacuously")
	}
	if s.Valid() {
		t.Error("Valid = true; want false")
	}
}

// TestNoChokepoint_Corridor isolates the chokepoint predicate: A's move
// down the middle column leaves a one-cell corridor at (2,2) that both B
// and C would have to cross.
//
//	..A..        ..A..
//	B...B   →    B.A.B
//	C...C        C...C
//	..A..        ..A..
func TestNoChokepoint_Corridor(t *testing.T) {
	s := mustState(t, "..A..\nB...B\nC...C\n..A..", Move{Color: 'A', Pos: at(1, 2)})
	if s.noChokepoint() {
		t.Error("noChokepoint = true; want false for the overloaded corridor")
	}
	if !s.noDeadEnds() || !s.noStrandedPaths() || !s.noFoldedPath() ||
		!s.componentsLegal() || !s.noStrandedRegions() {
		t.Error("only the chokepoint predicate should fail here")
	}
	if s.Valid() {
		t.Error("Valid = true; want false")
	}
}

// TestChokepoint_BorderSkip verifies the check never triggers for moves
// landing on border cells, even when the same corridor geometry exists.
func TestChokepoint_BorderSkip(t *testing.T) {
	s := mustState(t, "A....\n.....\n.....\n.....\n....A", Move{Color: 'A', Pos: at(0, 1)})
	if !s.noChokepoint() {
		t.Error("noChokepoint = false; want true for a border move")
	}
}
