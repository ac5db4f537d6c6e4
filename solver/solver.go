package solver

import (
	"container/heap"
	"io"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/andy327/flow-solver/board"
	"github.com/andy327/flow-solver/puzzle"
)

// jitterScale bounds the restart tie-break perturbation strictly below
// the 0.01 score quantum, so jitter can only reorder exact ties.
const jitterScale = 1e-6

// Solver is a configured search instance over one puzzle. It owns no
// state between Solve calls; every call builds its queue from scratch.
type Solver struct {
	puz  *puzzle.Puzzle
	opts Options
}

// New builds a Solver for p with the given options applied on top of
// DefaultOptions. Returns ErrNilPuzzle if p is nil.
func New(p *puzzle.Puzzle, opts ...Option) (*Solver, error) {
	if p == nil {
		return nil, ErrNilPuzzle
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Solver{puz: p, opts: cfg}, nil
}

// Solve is a convenience wrapper: build a Solver and run it.
// The boolean reports whether a solution was found within the budgets.
func Solve(p *puzzle.Puzzle, opts ...Option) (*board.State, bool, error) {
	s, err := New(p, opts...)
	if err != nil {
		return nil, false, err
	}
	st, ok := s.Solve()

	return st, ok, nil
}

// Solve runs up to MaxAttempts best-first searches of MaxIterations queue
// pops each and returns the first solved state found. The first attempt
// is the pure deterministic search; later attempts perturb score ties
// with a per-attempt seeded jitter so they explore differently.
// A false result means every attempt exhausted its budget — a normal
// negative outcome, not an error.
func (s *Solver) Solve() (*board.State, bool) {
	log := s.logger()
	initial := board.New(s.puz)

	for attempt := 1; attempt <= s.opts.MaxAttempts; attempt++ {
		var jitter *rand.Rand
		if attempt > 1 {
			jitter = attemptRNG(s.opts.Seed, attempt)
		}
		st, iterations := s.attempt(initial, jitter)
		if st != nil {
			log.WithFields(logrus.Fields{
				"attempt":    attempt,
				"iterations": iterations,
			}).Debug("solution found")

			return st, true
		}
		log.WithFields(logrus.Fields{
			"attempt":    attempt,
			"iterations": iterations,
		}).Debug("attempt exhausted")
	}

	return nil, false
}

// attempt runs one bounded best-first search from the initial state.
// Returns the solved state (or nil) and the number of iterations used.
func (s *Solver) attempt(initial *board.State, jitter *rand.Rand) (*board.State, int) {
	pq := make(statePQ, 0, 64)
	heap.Init(&pq)
	var seq uint64

	push := func(st *board.State) {
		sc := score(st)
		if jitter != nil {
			sc += jitter.Float64() * jitterScale
		}
		heap.Push(&pq, &stateItem{st: st, score: sc, seq: seq})
		seq++
	}
	push(initial)

	iterations := 0
	for ; iterations < s.opts.MaxIterations && pq.Len() > 0; iterations++ {
		st := heap.Pop(&pq).(*stateItem).st
		if st.Solved() {
			return st, iterations + 1
		}
		for _, next := range nextStates(st) {
			push(next)
		}
	}

	return nil, iterations
}

// nextStates expands every legal move of st exactly once and applies the
// forced-move shortcuts:
//
//   - a necessary move (a head's single non-bridging option) whose
//     successor fails validity proves st itself unsolvable — the
//     expansion yields nothing;
//   - otherwise a forced valid successor is not optional, so it is the
//     only successor returned;
//   - otherwise all valid successors are returned, ordered ascending by
//     the branching factor of the move that produced them
//     (most-constrained-first, additional to the heuristic).
//
// Invalid successors of non-necessary moves are simply dropped: the
// broader forced classification is a branching heuristic, not a
// necessity proof, and must not condemn the parent.
func nextStates(st *board.State) []*board.State {
	type candidate struct {
		st        *board.State
		branching int
	}

	var (
		candidates  []candidate
		forcedValid *board.State
	)
	for _, m := range st.LegalMoves() {
		branching := st.BranchingFactor(m)
		next := st.WithMove(m)
		switch {
		case !next.Valid():
			if st.MoveNecessary(m) {
				return nil // the head's only way forward fails: the state is dead
			}
		case next.Forced():
			if forcedValid == nil {
				forcedValid = next
			}
		default:
			candidates = append(candidates, candidate{st: next, branching: branching})
		}
	}

	if forcedValid != nil {
		return []*board.State{forcedValid}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].branching < candidates[j].branching
	})
	out := make([]*board.State, len(candidates))
	for i, c := range candidates {
		out[i] = c.st
	}

	return out
}

// logger returns the configured logger, or a discarding one.
func (s *Solver) logger() logrus.FieldLogger {
	if s.opts.Logger != nil {
		return s.opts.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// stateItem pairs a candidate state with its heuristic score. The seq
// field is a monotonic insertion counter used as a stable tie-break.
type stateItem struct {
	st    *board.State
	score float64
	seq   uint64
}

// statePQ is a max-heap of *stateItem: the highest score is dequeued
// first; equal scores dequeue in insertion order.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders by descending score, then ascending insertion order.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].score != pq[j].score {
		return pq[i].score > pq[j].score
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a *stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the best element from the heap.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
