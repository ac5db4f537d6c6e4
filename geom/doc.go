// Package geom defines the value types shared by every flow-solver
// component: grid positions, the four cardinal directions, and paths.
//
// What:
//
//   - Position is an integer (row, col) pair with value equality.
//   - Direction is the closed enumeration {Up, Down, Left, Right}.
//   - Path is an ordered, head-first sequence of positions; extending a
//     path yields a fresh value and never mutates the receiver.
//
// Why:
//
//   - Board states are persistent immutable values; keeping the geometric
//     primitives allocation-light value types keeps successor construction
//     cheap and free of shared mutable state.
//
// Errors:
//
//   - ErrNotAdjacent: DirectionFrom was invoked on two positions that are
//     not grid-adjacent. Callers only ever ask for directions between
//     known-adjacent cells, so this signals a programming error upstream.
//
// Complexity: every operation is O(1) except Path.Extend and Path.Contains,
// which are O(len(path)).
package geom
