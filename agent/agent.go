package agent

import "github.com/katalvlaran/voidwalk/gridgraph"

// Agent walks a path cell by cell. Its fields are mutated only by Follow and
// Advance; it shares no state with other agents.
type Agent struct {
	position   gridgraph.Cell
	target     gridgraph.Cell
	value      int64
	history    []gridgraph.Cell
	remaining  []gridgraph.Cell
	state      State
	costs      CostSource
	appearance string
}

// New places an Idle agent on start, heading for target.
func New(start, target gridgraph.Cell, costs CostSource, opts ...Option) *Agent {
	a := &Agent{
		position:   start,
		target:     target,
		state:      Idle,
		costs:      costs,
		appearance: DefaultAppearance,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Follow hands the agent the cells still to visit, excluding the one it
// stands on. An agent already on its target arrives immediately; an empty
// path otherwise leaves it Stuck. Returns ErrAlreadyFollowing unless Idle.
func (a *Agent) Follow(path []gridgraph.Cell) (State, error) {
	if a.state != Idle {
		return a.state, ErrAlreadyFollowing
	}
	a.remaining = append([]gridgraph.Cell(nil), path...)
	switch {
	case a.position == a.target:
		a.state = Arrived
	case len(a.remaining) == 0:
		a.state = Stuck
	default:
		a.state = Moving
	}
	return a.state, nil
}

// Advance consumes the next path cell: the old position joins the history,
// the cell's cost is added to the accumulated value and the agent moves in.
// A next cell that is not adjacent or cannot be entered leaves the agent Stuck
// in place with value and history unchanged.
func (a *Agent) Advance() (State, error) {
	switch a.state {
	case Idle:
		return a.state, ErrNotFollowing
	case Arrived, Stuck:
		return a.state, ErrTerminal
	}

	next := a.remaining[0]
	cost, ok := a.costs.CellCost(next)
	if !ok || !a.position.Adjacent(next) {
		a.state = Stuck
		return a.state, nil
	}

	a.remaining = a.remaining[1:]
	a.history = append(a.history, a.position)
	a.position = next
	a.value += int64(cost)

	switch {
	case next == a.target:
		a.state = Arrived
	case len(a.remaining) == 0:
		a.state = Stuck
	}
	return a.state, nil
}

// State returns the current lifecycle state.
func (a *Agent) State() State { return a.state }

// Position returns the cell the agent occupies.
func (a *Agent) Position() gridgraph.Cell { return a.position }

// Target returns the cell the agent is heading for.
func (a *Agent) Target() gridgraph.Cell { return a.target }

// Value returns the accumulated entry cost of every cell moved into.
func (a *Agent) Value() int64 { return a.value }

// Steps returns the number of moves made so far.
func (a *Agent) Steps() int { return len(a.history) }

// Appearance returns the creature's marker.
func (a *Agent) Appearance() string { return a.appearance }

// History returns a copy of the previously occupied cells, oldest first.
func (a *Agent) History() []gridgraph.Cell {
	return append([]gridgraph.Cell(nil), a.history...)
}

// RemainingPath returns a copy of the cells still to visit.
func (a *Agent) RemainingPath() []gridgraph.Cell {
	return append([]gridgraph.Cell(nil), a.remaining...)
}
