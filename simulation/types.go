package simulation

import (
	"context"

	"github.com/google/uuid"

	"github.com/katalvlaran/voidwalk/agent"
	"github.com/katalvlaran/voidwalk/gridgraph"
)

// Reason explains how a run ended.
type Reason int

const (
	// ReasonArrived means the creature reached the target.
	ReasonArrived Reason = iota
	// ReasonNoPath means no path existed (or it could not be followed).
	ReasonNoPath
	// ReasonAborted means the pacer stopped the run early.
	ReasonAborted
)

// String returns the lower-case reason name.
func (r Reason) String() string {
	switch r {
	case ReasonArrived:
		return "arrived"
	case ReasonNoPath:
		return "no-path"
	case ReasonAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Frame is the snapshot handed to the Renderer before every step.
type Frame struct {
	RunID         uuid.UUID
	Grid          *gridgraph.Grid
	Position      gridgraph.Cell
	Appearance    string
	History       []gridgraph.Cell
	Remaining     []gridgraph.Cell
	ProjectedCost int64 // dijkstra.Unreachable when no path exists
	Value         int64
	Step          int
	State         agent.State
}

// Outcome summarises a finished run.
type Outcome struct {
	RunID         uuid.UUID
	Reason        Reason
	FinalValue    int64
	ProjectedCost int64
	Steps         int
	Path          []gridgraph.Cell // full planned path including the start, nil if none
	Walls         int              // obstacles separating start and target when no path exists
}

// Renderer draws frames and the final outcome of a run.
type Renderer interface {
	Render(f Frame) error
	Conclude(o Outcome) error
}

// Pacer decides when (and whether) the next step happens.
// Returning false stops the run without error.
type Pacer interface {
	Wait(ctx context.Context) (bool, error)
}

// PacerFunc adapts a function to the Pacer interface.
type PacerFunc func(ctx context.Context) (bool, error)

// Wait calls f(ctx).
func (f PacerFunc) Wait(ctx context.Context) (bool, error) { return f(ctx) }

// GridSource supplies the grid of each run in a session.
type GridSource interface {
	Next() (*gridgraph.Grid, error)
	// Repeats reports whether the source can supply another run.
	Repeats() bool
}
