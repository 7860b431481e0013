package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the umbrella for malformed grids. Every construction error wraps it.
	ErrConfiguration = errors.New("gridgraph: invalid grid configuration")
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrConfiguration)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrConfiguration)
	// ErrOutOfBounds indicates a start or target cell outside the grid.
	ErrOutOfBounds = fmt.Errorf("%w: cell out of bounds", ErrConfiguration)
	// ErrNoTarget indicates a preset matrix without the target sentinel.
	ErrNoTarget = fmt.Errorf("%w: preset has no target cell", ErrConfiguration)
	// ErrCostTooLarge indicates an entry cost above MaxCellCost for the grid's size.
	ErrCostTooLarge = fmt.Errorf("%w: entry cost too large", ErrConfiguration)
	// ErrBadPreset indicates a preset document that could not be decoded.
	ErrBadPreset = fmt.Errorf("%w: malformed preset document", ErrConfiguration)
)
