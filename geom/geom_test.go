package geom_test

import (
	"errors"
	"testing"

	"github.com/andy327/flow-solver/geom"
)

// TestPositionMove checks all four direction offsets from a center cell.
func TestPositionMove(t *testing.T) {
	p := geom.Position{Row: 2, Col: 3}
	cases := []struct {
		dir  geom.Direction
		want geom.Position
	}{
		{geom.Up, geom.Position{Row: 1, Col: 3}},
		{geom.Down, geom.Position{Row: 3, Col: 3}},
		{geom.Left, geom.Position{Row: 2, Col: 2}},
		{geom.Right, geom.Position{Row: 2, Col: 4}},
	}
	for _, tc := range cases {
		if got := p.Move(tc.dir); got != tc.want {
			t.Errorf("Move(%v) = %v; want %v", tc.dir, got, tc.want)
		}
	}
}

// TestDirectionFrom verifies direction recovery for the four adjacent
// positions and the error for non-adjacent pairs.
func TestDirectionFrom(t *testing.T) {
	p := geom.Position{Row: 2, Col: 3}
	for _, d := range geom.Directions {
		got, err := p.Move(d).DirectionFrom(p)
		if err != nil {
			t.Fatalf("DirectionFrom adjacent pair: unexpected error %v", err)
		}
		if got != d {
			t.Errorf("DirectionFrom(%v → %v) = %v; want %v", p, p.Move(d), got, d)
		}
	}

	nonAdjacent := []geom.Position{
		p,                // same cell
		{Row: 1, Col: 2}, // diagonal
		{Row: 2, Col: 5}, // two steps away
	}
	for _, q := range nonAdjacent {
		if _, err := q.DirectionFrom(p); !errors.Is(err, geom.ErrNotAdjacent) {
			t.Errorf("DirectionFrom(%v → %v) error = %v; want ErrNotAdjacent", p, q, err)
		}
	}
}

// TestAdjacent covers edge-sharing versus diagonal and identical cells.
func TestAdjacent(t *testing.T) {
	a := geom.Position{Row: 1, Col: 1}
	if !a.Adjacent(geom.Position{Row: 0, Col: 1}) || !a.Adjacent(geom.Position{Row: 1, Col: 2}) {
		t.Error("orthogonal neighbors reported as non-adjacent")
	}
	if a.Adjacent(a) || a.Adjacent(geom.Position{Row: 0, Col: 0}) {
		t.Error("identical or diagonal cells reported as adjacent")
	}
}

// TestPathExtend verifies head-first ordering and that extending never
// mutates the receiver.
func TestPathExtend(t *testing.T) {
	start := geom.Position{Row: 0, Col: 0}
	p := geom.NewPath(start)
	q := p.Extend(geom.Position{Row: 0, Col: 1})
	r := q.Extend(geom.Position{Row: 1, Col: 1})

	if len(p) != 1 || p.Head() != start {
		t.Fatalf("original path mutated: %v", p)
	}
	if q.Head() != (geom.Position{Row: 0, Col: 1}) {
		t.Errorf("q.Head() = %v; want (0,1)", q.Head())
	}
	if r.Head() != (geom.Position{Row: 1, Col: 1}) || len(r) != 3 {
		t.Errorf("r = %v; want head (1,1), length 3", r)
	}
	if !r.Contains(start) || r.Contains(geom.Position{Row: 2, Col: 2}) {
		t.Error("Contains mismatch on extended path")
	}
}
