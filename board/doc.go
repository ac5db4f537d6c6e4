// Package board implements the persistent board-state representation at
// the heart of the solver, together with its battery of validity
// predicates — the pruning logic that makes the search tractable.
//
// What:
//
//   - State is an immutable snapshot of partially-grown paths for every
//     color: each color owns two paths, one growing from each endpoint.
//     A successor is a new value produced by WithMove; the original stays
//     valid and untouched.
//   - LegalMoves enumerates the full one-step branching set; MoveForced
//     detects moves that are the only way to avoid dooming their color,
//     and MoveNecessary isolates the provable subset — a head whose
//     single open neighbor does not touch its partner head.
//   - Valid is the conjunction of six independent pruning predicates, each
//     a necessary condition for the state to still be solvable: no dead
//     ends, no stranded paths, no folded path, components legal, no
//     stranded regions, no chokepoints.
//   - Empty cells are labeled into maximal connected components by
//     iterative min-label propagation, recomputed fresh per state.
//
// Why:
//
//   - Numberlink is NP-complete; nearly all of the solver's value lies in
//     how aggressively successor states are discarded before they ever
//     reach the priority queue.
//
// Contracts:
//
//   - WithMove requires the move's cell to be empty and adjacent to one of
//     the color's two path heads. Violations are programming errors and
//     panic; they are never produced by LegalMoves.
//   - Derived queries are memoized per state. States are plain values with
//     no parent links; the move history reconstructs lineage.
//
// Complexity: predicates are linear passes over the (shrinking) set of
// empty cells; component labeling is the propagation closure over that
// same set. Nothing global is maintained across states.
package board
