package solver

import "github.com/andy327/flow-solver/board"

// Heuristic weights. Every component of the score is a multiple of 0.01,
// so any perturbation strictly below that quantum can only reorder exact
// ties.
const (
	emptyCellWeight      = -1.0  // fewer uncovered cells is better
	completedColorWeight = 1.0   // each bridged color pair is progress
	straightMoveBonus    = 0.5   // continuing a path beats starting elsewhere
	borderMoveBonus      = 0.1   // weak preference for hugging the border
	wallDistanceWeight   = -0.01 // very weak tiebreak toward the walls
)

// score rates a state for the priority queue; higher is better.
func score(st *board.State) float64 {
	sc := emptyCellWeight * float64(len(st.EmptyCells()))

	for _, c := range st.Puzzle().Colors() {
		if st.Complete(c) {
			sc += completedColorWeight
		}
	}

	moves := st.Moves()
	if len(moves) >= 2 && moves[0].Pos.Adjacent(moves[1].Pos) {
		sc += straightMoveBonus
	}
	if last, ok := st.LastMove(); ok {
		if st.Puzzle().IsBorder(last.Pos) {
			sc += borderMoveBonus
		}
		sc += wallDistanceWeight * float64(wallDistance(st, last))
	}

	return sc
}

// wallDistance is the minimum number of steps from the move's cell to any
// of the four walls.
func wallDistance(st *board.State, m board.Move) int {
	rows, cols := st.Puzzle().Rows(), st.Puzzle().Cols()
	d := m.Pos.Row
	if v := rows - 1 - m.Pos.Row; v < d {
		d = v
	}
	if v := m.Pos.Col; v < d {
		d = v
	}
	if v := cols - 1 - m.Pos.Col; v < d {
		d = v
	}

	return d
}
