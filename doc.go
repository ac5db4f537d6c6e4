// Package flowsolver solves Numberlink-style "Flow" puzzles: given a
// grid with pairs of same-colored endpoints, it finds an assignment of
// colors to every cell such that each color forms one simple path
// connecting its two endpoints and every cell is covered by exactly one
// path.
//
// The problem is NP-complete; the module's value is entirely in how
// aggressively it prunes the search space and how it orders exploration:
//
//	geom/    — positions, directions and head-first paths
//	puzzle/  — the immutable board definition and its ASCII parser
//	board/   — persistent board states and the six pruning predicates
//	solver/  — the best-first search controller and its retry policy
//	render/  — plain and ANSI-colorized board rendering
//
// cmd/flowsolver ties them together into a command-line solver.
package flowsolver
