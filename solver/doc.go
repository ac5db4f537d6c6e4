// Package solver drives a best-first search over immutable board states.
//
// What:
//
//   - A max-score priority queue (container/heap) of candidate states;
//     equal scores break ties by insertion order, keeping runs stable.
//   - A heuristic score favoring nearly-filled boards, completed colors,
//     moves that continue straight, and (weakly) wall-hugging moves.
//   - Successor expansion with two forced-move shortcuts: a necessary
//     move failing validity proves the whole branch dead, and a forced
//     valid successor is the only one worth keeping. Remaining successors
//     are ordered most-constrained-first by the producing move's
//     branching factor.
//   - A bounded retry loop: up to MaxAttempts attempts of MaxIterations
//     queue pops each. Attempts after the first perturb score ties with a
//     tiny deterministic seeded jitter so a restart explores a different
//     frontier order instead of replaying the identical run.
//
// Why:
//
//   - The underlying problem is NP-complete; exploration order and
//     aggressive pruning are the entire game. The queue, counters and
//     jitter stream are the only mutable state, all owned by one solve
//     call — states themselves are immutable values.
//
// Errors:
//
//   - ErrNilPuzzle: New was given a nil puzzle.
//
// Search exhaustion is not an error: Solve reports it as an absent
// result, and the caller decides whether to retry with larger budgets.
package solver
