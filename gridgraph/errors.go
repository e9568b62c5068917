package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no columns or no rows was requested.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a cell lies outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
)
