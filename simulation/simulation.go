package simulation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/voidwalk/agent"
	"github.com/katalvlaran/voidwalk/dijkstra"
	"github.com/katalvlaran/voidwalk/gridgraph"
)

// ErrNilGrid is returned by Run when no grid is supplied.
var ErrNilGrid = errors.New("simulation: grid is nil")

// Simulation drives runs against a renderer and a pacer.
type Simulation struct {
	renderer    Renderer
	pacer       Pacer
	logger      *slog.Logger
	appearance  string
	pathOptions []dijkstra.Option
	startPause  Pacer
}

// Option customizes a Simulation.
type Option func(*Simulation)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAppearance sets the creature's marker.
func WithAppearance(marker string) Option {
	return func(s *Simulation) {
		s.appearance = marker
	}
}

// WithPathOptions forwards options to the path finder of every run.
func WithPathOptions(opts ...dijkstra.Option) Option {
	return func(s *Simulation) {
		s.pathOptions = append(s.pathOptions, opts...)
	}
}

// WithStartPause waits on p once per run, after the first frame is drawn and
// before the creature moves. Declining aborts the run. A nil p is ignored.
func WithStartPause(p Pacer) Option {
	return func(s *Simulation) {
		s.startPause = p
	}
}

// New builds a Simulation. Logging is discarded unless WithLogger is given.
func New(renderer Renderer, pacer Pacer, opts ...Option) *Simulation {
	s := &Simulation{
		renderer:   renderer,
		pacer:      pacer,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		appearance: agent.DefaultAppearance,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run performs one traversal of g: the path is computed once up front, then
// the creature is advanced one cell per paced step until it arrives or is
// stuck. Renderer and pacer errors abort the run and are returned wrapped,
// together with an Outcome whose Reason is ReasonAborted.
func (s *Simulation) Run(ctx context.Context, g *gridgraph.Grid) (Outcome, error) {
	if g == nil {
		return Outcome{}, ErrNilGrid
	}
	id := uuid.New()
	log := s.logger.With("run_id", id.String())
	h, w := g.Dimensions()
	log.Info("run started", "height", h, "width", w, "start", g.Start().String(), "target", g.Target().String())

	pf, err := dijkstra.New(g, s.pathOptions...)
	if err != nil {
		return Outcome{RunID: id, Reason: ReasonAborted}, fmt.Errorf("simulation: build path finder: %w", err)
	}
	res, err := pf.Solve(g.Start(), g.Target())
	if err != nil {
		return Outcome{RunID: id, Reason: ReasonAborted}, fmt.Errorf("simulation: solve: %w", err)
	}

	out := Outcome{RunID: id, ProjectedCost: res.Cost, Path: res.Path}
	var remaining []gridgraph.Cell
	if res.Found() {
		remaining = res.Path[1:]
		log.Info("path found", "cost", res.Cost, "length", len(res.Path))
	} else {
		var breachErr error
		if _, out.Walls, breachErr = g.Breach(g.Start(), g.Target()); breachErr != nil {
			log.Warn("breach analysis failed", "error", breachErr)
		}
		log.Warn("no path", "walls", out.Walls)
	}

	creature := agent.New(g.Start(), g.Target(), g, agent.WithAppearance(s.appearance))
	if _, err = creature.Follow(remaining); err != nil {
		return out, fmt.Errorf("simulation: follow: %w", err)
	}

	for first := true; ; first = false {
		if err = s.renderer.Render(s.frame(id, g, creature, res.Cost)); err != nil {
			out.Reason = ReasonAborted
			return s.finish(log, out, creature), fmt.Errorf("simulation: render: %w", err)
		}
		if first && s.startPause != nil {
			proceed, err := s.startPause.Wait(ctx)
			if err != nil {
				out.Reason = ReasonAborted
				return s.finish(log, out, creature), fmt.Errorf("simulation: start pause: %w", err)
			}
			if !proceed {
				out.Reason = ReasonAborted
				return s.conclude(log, out, creature)
			}
		}
		if creature.State().Terminal() {
			break
		}
		proceed, err := s.pacer.Wait(ctx)
		if err != nil {
			out.Reason = ReasonAborted
			return s.finish(log, out, creature), fmt.Errorf("simulation: pace: %w", err)
		}
		if !proceed {
			out.Reason = ReasonAborted
			return s.conclude(log, out, creature)
		}
		if _, err = creature.Advance(); err != nil {
			return s.finish(log, out, creature), fmt.Errorf("simulation: advance: %w", err)
		}
	}

	out.Reason = ReasonNoPath
	if creature.State() == agent.Arrived {
		out.Reason = ReasonArrived
	}
	return s.conclude(log, out, creature)
}

// conclude records the final state and hands the outcome to the renderer.
func (s *Simulation) conclude(log *slog.Logger, out Outcome, creature *agent.Agent) (Outcome, error) {
	out = s.finish(log, out, creature)
	if err := s.renderer.Conclude(out); err != nil {
		return out, fmt.Errorf("simulation: conclude: %w", err)
	}
	return out, nil
}

// finish copies the creature's totals into out and logs the end of the run.
func (s *Simulation) finish(log *slog.Logger, out Outcome, creature *agent.Agent) Outcome {
	out.FinalValue = creature.Value()
	out.Steps = creature.Steps()
	log.Info("run finished", "reason", out.Reason.String(), "value", out.FinalValue, "steps", out.Steps)
	return out
}

// frame snapshots the creature for the renderer.
func (s *Simulation) frame(id uuid.UUID, g *gridgraph.Grid, creature *agent.Agent, projected int64) Frame {
	return Frame{
		RunID:         id,
		Grid:          g,
		Position:      creature.Position(),
		Appearance:    creature.Appearance(),
		History:       creature.History(),
		Remaining:     creature.RemainingPath(),
		ProjectedCost: projected,
		Value:         creature.Value(),
		Step:          creature.Steps(),
		State:         creature.State(),
	}
}

// Session runs grids from src until the source is exhausted, a run is
// aborted, or cont declines another run. It returns the outcome of every run.
func (s *Simulation) Session(ctx context.Context, src GridSource, cont Pacer) ([]Outcome, error) {
	var outcomes []Outcome
	for {
		g, err := src.Next()
		if err != nil {
			return outcomes, fmt.Errorf("simulation: next grid: %w", err)
		}
		out, err := s.Run(ctx, g)
		outcomes = append(outcomes, out)
		if err != nil {
			return outcomes, err
		}
		if out.Reason == ReasonAborted || !src.Repeats() {
			return outcomes, nil
		}
		again, err := cont.Wait(ctx)
		if err != nil {
			return outcomes, fmt.Errorf("simulation: continue: %w", err)
		}
		if !again {
			return outcomes, nil
		}
	}
}
