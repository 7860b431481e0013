package simulation

import (
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/voidwalk/gridgraph"
)

// Bounds of randomly sized grids.
const (
	MaxRandomHeight = 14
	MaxRandomWidth  = 20
)

// ErrSourceExhausted is returned by a PresetSource asked for a second grid.
var ErrSourceExhausted = errors.New("simulation: grid source exhausted")

// RandomSource produces a fresh random grid for every run: 1..14 rows,
// 1..20 columns, start at (0, 0) and the target somewhere in the lower-right
// quadrant.
type RandomSource struct {
	rng  *rand.Rand
	opts []gridgraph.Option
}

// NewRandomSource seeds the source; seed 0 seeds from the clock. opts are
// applied to every generated grid after the source's own RNG.
func NewRandomSource(seed int64, opts ...gridgraph.Option) *RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomSource{rng: rand.New(rand.NewSource(seed)), opts: opts}
}

// Next draws dimensions and a target, then generates the grid.
func (s *RandomSource) Next() (*gridgraph.Grid, error) {
	h := 1 + s.rng.Intn(MaxRandomHeight)
	w := 1 + s.rng.Intn(MaxRandomWidth)
	target := gridgraph.Cell{
		Row: h/2 + s.rng.Intn(h-h/2),
		Col: w/2 + s.rng.Intn(w-w/2),
	}
	opts := append([]gridgraph.Option{gridgraph.WithRand(s.rng)}, s.opts...)
	return gridgraph.Generate(h, w, gridgraph.Cell{}, target, opts...)
}

// Repeats is always true.
func (s *RandomSource) Repeats() bool { return true }

// PresetSource supplies one fixed grid, once.
type PresetSource struct {
	grid *gridgraph.Grid
	used bool
}

// NewPresetSource wraps g.
func NewPresetSource(g *gridgraph.Grid) *PresetSource {
	return &PresetSource{grid: g}
}

// Next returns the grid on the first call and ErrSourceExhausted afterwards.
func (s *PresetSource) Next() (*gridgraph.Grid, error) {
	if s.used {
		return nil, ErrSourceExhausted
	}
	s.used = true
	return s.grid, nil
}

// Repeats is always false.
func (s *PresetSource) Repeats() bool { return false }
