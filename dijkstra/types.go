package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/voidwalk/gridgraph"
)

// Sentinel errors returned by the PathFinder.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrCellOutOfBounds indicates that start or target lies outside the grid.
	ErrCellOutOfBounds = errors.New("dijkstra: cell out of bounds")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable is the cost reported when no path reaches the target.
const Unreachable int64 = math.MaxInt64

// Result is the outcome of a single search.
//
// Path runs from start to target inclusive, each step orthogonally adjacent.
// It is empty when the target cannot be reached, in which case Cost is Unreachable.
type Result struct {
	Path []gridgraph.Cell
	Cost int64
}

// Found reports whether the search reached the target.
func (r Result) Found() bool {
	return len(r.Path) > 0 && r.Cost != Unreachable
}

// Options configures the behavior of the PathFinder.
//
// MaxDistance – cells whose best cost exceeds this are never finalised.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// OnFinalize  – called once per finalised cell with its shortest cost.
type Options struct {
	MaxDistance int64
	OnFinalize  func(cell gridgraph.Cell, cost int64)
}

// Option represents a functional option for configuring the PathFinder.
type Option func(*Options)

// WithMaxDistance caps the cost explored from start. A target beyond the cap
// is reported as Unreachable. Panics with ErrBadMaxDistance on negative input.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithOnFinalize registers a hook invoked each time a cell's cost becomes final,
// in finalisation order. A nil fn is ignored.
func WithOnFinalize(fn func(cell gridgraph.Cell, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// DefaultOptions returns Options with no distance cap and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
		OnFinalize:  func(gridgraph.Cell, int64) {},
	}
}
