package agent

import (
	"errors"

	"github.com/katalvlaran/voidwalk/gridgraph"
)

// Sentinel errors for misuse of the state machine.
var (
	// ErrTerminal is returned by Advance once the agent has arrived or is stuck.
	ErrTerminal = errors.New("agent: no transitions leave a terminal state")
	// ErrNotFollowing is returned by Advance before Follow was called.
	ErrNotFollowing = errors.New("agent: no path to follow yet")
	// ErrAlreadyFollowing is returned by Follow outside the Idle state.
	ErrAlreadyFollowing = errors.New("agent: path already assigned")
)

// State enumerates the agent lifecycle.
type State int

const (
	// Idle holds no path yet.
	Idle State = iota
	// Moving has cells left to visit.
	Moving
	// Arrived stands on the target.
	Arrived
	// Stuck had no path, ran out of path, or met a cell it cannot enter.
	Stuck
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	case Arrived:
		return "arrived"
	case Stuck:
		return "stuck"
	default:
		return "unknown"
	}
}

// Terminal reports whether no transitions leave s.
func (s State) Terminal() bool {
	return s == Arrived || s == Stuck
}

// CostSource answers entry-cost queries; *gridgraph.Grid satisfies it.
type CostSource interface {
	CellCost(c gridgraph.Cell) (int, bool)
}

// DefaultAppearance is the marker drawn for the creature.
const DefaultAppearance = "🟥"

// Option customizes a new Agent.
type Option func(*Agent)

// WithAppearance sets the creature's marker. Empty strings are ignored.
func WithAppearance(s string) Option {
	return func(a *Agent) {
		if s != "" {
			a.appearance = s
		}
	}
}
