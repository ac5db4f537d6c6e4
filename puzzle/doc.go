// Package puzzle defines the static, immutable description of a Flow
// board: its dimensions and the per-color endpoint pairs, together with
// the geometric queries every other component inherits from it.
//
// What:
//
//   - Puzzle holds rows, cols and a color → endpoint-pair mapping, deep
//     copied at construction so the definition can never be mutated.
//   - Geometric queries: Contains, IsBorder, IsEmpty, Neighbors (≤4
//     in-bounds positions in Up/Down/Left/Right order), AreNeighbors,
//     Cells, EmptyCells.
//   - Parse builds a Puzzle from an ASCII grid where '.' marks an empty
//     cell and any other rune marks one endpoint of that rune's color.
//
// Invariants:
//
//   - Every color has exactly two distinct, in-bounds endpoints.
//   - Endpoints of different colors never coincide.
//
// Errors:
//
//   - ErrBadDimensions:       rows or cols is not positive.
//   - ErrNoColors:            the endpoint mapping is empty.
//   - ErrEndpointOutOfBounds: an endpoint lies outside the grid.
//   - ErrEndpointsEqual:      a color's two endpoints coincide.
//   - ErrEndpointOverlap:     two colors share an endpoint cell.
//   - ErrEmptyGrid:           the ASCII input has no rows or no columns.
//   - ErrNonRectangular:      the ASCII rows have differing lengths.
//   - ErrEndpointCount:       a rune appears a number of times other than two.
//
// All queries are pure functions of the static configuration; out-of-range
// positions yield false/empty results rather than errors.
package puzzle
