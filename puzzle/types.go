package puzzle

import (
	"errors"

	"github.com/andy327/flow-solver/geom"
)

// Sentinel errors for puzzle construction and parsing.
var (
	// ErrBadDimensions indicates rows or cols is not positive.
	ErrBadDimensions = errors.New("puzzle: rows and cols must be positive")
	// ErrNoColors indicates an empty endpoint mapping.
	ErrNoColors = errors.New("puzzle: at least one color is required")
	// ErrEndpointOutOfBounds indicates an endpoint outside the grid.
	ErrEndpointOutOfBounds = errors.New("puzzle: endpoint out of bounds")
	// ErrEndpointsEqual indicates a color whose two endpoints coincide.
	ErrEndpointsEqual = errors.New("puzzle: endpoints of a color must be distinct")
	// ErrEndpointOverlap indicates two colors sharing an endpoint cell.
	ErrEndpointOverlap = errors.New("puzzle: endpoint cell used by two colors")
	// ErrEmptyGrid indicates ASCII input with no rows or no columns.
	ErrEmptyGrid = errors.New("puzzle: input grid must have at least one row and one column")
	// ErrNonRectangular indicates ASCII rows of differing lengths.
	ErrNonRectangular = errors.New("puzzle: all rows must have the same length")
	// ErrEndpointCount indicates a rune appearing other than exactly twice.
	ErrEndpointCount = errors.New("puzzle: every color must appear in exactly two cells")
)

// Color identifies one flow. It carries no semantics beyond equality;
// the underlying rune is whatever character named the flow in the input.
type Color rune

// String returns the color's rune as a string.
func (c Color) String() string {
	return string(rune(c))
}

// Endpoints is the unordered pair of cells a color's path must connect.
type Endpoints [2]geom.Position
