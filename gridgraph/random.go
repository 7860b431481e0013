package gridgraph

import (
	"math/rand"
	"time"
)

// Deterministic defaults (named, no magic numbers).
const (
	DefaultBlockProbability = 0.25 // chance that a generated cell is an obstacle
	DefaultMinCost          = 1    // lowest generated entry cost
	DefaultMaxCost          = 9    // highest generated entry cost
)

// Option customizes random grid generation by mutating a generatorConfig.
type Option func(*generatorConfig)

// generatorConfig aggregates the knobs used by Generate.
type generatorConfig struct {
	rng       *rand.Rand
	blockProb float64
	minCost   int
	maxCost   int
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gridgraph: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithBlockProbability sets the independent chance p that a cell is blocked.
// Panics unless 0 <= p < 1.
func WithBlockProbability(p float64) Option {
	if p < 0 || p >= 1 {
		panic("gridgraph: WithBlockProbability(p outside [0,1))")
	}
	return func(c *generatorConfig) {
		c.blockProb = p
	}
}

// WithCostRange sets the inclusive range entry costs are drawn from.
// Panics unless 1 <= lo <= hi.
func WithCostRange(lo, hi int) Option {
	if lo < 1 || hi < lo {
		panic("gridgraph: WithCostRange(lo<1 or hi<lo)")
	}
	return func(c *generatorConfig) {
		c.minCost, c.maxCost = lo, hi
	}
}

// Generate builds a height×width grid where each cell is independently
// blocked with the configured probability and otherwise costs a uniform
// draw from the configured range. Start and target are normalised as in New.
// Without WithSeed or WithRand the RNG is seeded from the clock.
// Returns ErrEmptyGrid for non-positive dimensions and ErrOutOfBounds for
// endpoints outside the grid.
// Complexity: O(W×H) time and memory.
func Generate(height, width int, start, target Cell, opts ...Option) (*Grid, error) {
	cfg := generatorConfig{
		blockProb: DefaultBlockProbability,
		minCost:   DefaultMinCost,
		maxCost:   DefaultMaxCost,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyGrid
	}

	values := make([][]int, height)
	for r := range values {
		values[r] = make([]int, width)
		for c := range values[r] {
			if cfg.rng.Float64() < cfg.blockProb {
				values[r][c] = Blocked
				continue
			}
			values[r][c] = cfg.minCost + cfg.rng.Intn(cfg.maxCost-cfg.minCost+1)
		}
	}

	return New(values, start, target)
}
