package simulation

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/voidwalk/gridgraph"
)

// ErrConfig reports an unusable configuration value.
var ErrConfig = errors.New("simulation: invalid configuration")

// Mode selects how steps are paced.
type Mode string

const (
	// ModeTimed advances after a fixed interval.
	ModeTimed Mode = "timed"
	// ModePrompt advances when the user presses enter.
	ModePrompt Mode = "prompt"
)

// ParseMode normalises a user-supplied mode name: case and surrounding
// space are ignored. The result is checked by Config.Validate.
func ParseMode(s string) Mode {
	return Mode(strings.ToLower(strings.TrimSpace(s)))
}

// Environment variable names read by LoadConfig.
const (
	EnvMode             = "VOIDWALK_MODE"
	EnvInterval         = "VOIDWALK_INTERVAL"
	EnvSeed             = "VOIDWALK_SEED"
	EnvBlockProbability = "VOIDWALK_BLOCK_PROBABILITY"
	EnvCostMin          = "VOIDWALK_COST_MIN"
	EnvCostMax          = "VOIDWALK_COST_MAX"
)

// DefaultInterval is the pause between timed steps.
const DefaultInterval = 100 * time.Millisecond

// Config holds the settings of a CLI session.
type Config struct {
	Mode             Mode          // pacing mode
	Interval         time.Duration // pause between steps in timed mode
	Seed             int64         // random grid seed, 0 seeds from the clock
	BlockProbability float64       // chance that a random cell is an obstacle
	MinCost          int           // lowest random entry cost
	MaxCost          int           // highest random entry cost
}

// DefaultConfig returns timed mode at DefaultInterval with the generator defaults.
func DefaultConfig() Config {
	return Config{
		Mode:             ModeTimed,
		Interval:         DefaultInterval,
		BlockProbability: gridgraph.DefaultBlockProbability,
		MinCost:          gridgraph.DefaultMinCost,
		MaxCost:          gridgraph.DefaultMaxCost,
	}
}

// LoadConfig overlays environment variables on DefaultConfig. When envFile is
// non-empty it must exist and is loaded first; otherwise a .env in the working
// directory is loaded if present. Variables already set in the environment
// win over file entries.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("%w: env file %q: %v", ErrConfig, envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: .env: %v", ErrConfig, err)
	}

	cfg := DefaultConfig()
	if v, ok := os.LookupEnv(EnvMode); ok {
		cfg.Mode = ParseMode(v)
	}
	if v, ok := os.LookupEnv(EnvInterval); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrConfig, EnvInterval, err)
		}
		cfg.Interval = d
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrConfig, EnvSeed, err)
		}
		cfg.Seed = n
	}
	if v, ok := os.LookupEnv(EnvBlockProbability); ok {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrConfig, EnvBlockProbability, err)
		}
		cfg.BlockProbability = p
	}
	if v, ok := os.LookupEnv(EnvCostMin); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrConfig, EnvCostMin, err)
		}
		cfg.MinCost = n
	}
	if v, ok := os.LookupEnv(EnvCostMax); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrConfig, EnvCostMax, err)
		}
		cfg.MaxCost = n
	}

	return cfg, cfg.Validate()
}

// Validate reports the first setting the generator or pacer would reject.
func (c Config) Validate() error {
	switch {
	case c.Mode != ModeTimed && c.Mode != ModePrompt:
		return fmt.Errorf("%w: mode %q (want %q or %q)", ErrConfig, c.Mode, ModeTimed, ModePrompt)
	case c.Interval < 0:
		return fmt.Errorf("%w: negative interval %v", ErrConfig, c.Interval)
	case c.BlockProbability < 0 || c.BlockProbability >= 1:
		return fmt.Errorf("%w: block probability %v outside [0,1)", ErrConfig, c.BlockProbability)
	case c.MinCost < 1 || c.MaxCost < c.MinCost:
		return fmt.Errorf("%w: cost range [%d,%d]", ErrConfig, c.MinCost, c.MaxCost)
	}
	return nil
}

// GridOptions translates the generator settings. Call Validate first: the
// gridgraph options panic on out-of-range values.
func (c Config) GridOptions() []gridgraph.Option {
	return []gridgraph.Option{
		gridgraph.WithBlockProbability(c.BlockProbability),
		gridgraph.WithCostRange(c.MinCost, c.MaxCost),
	}
}

// Pacer returns the step pacer for the configured mode. Prompt mode reads
// answers from in and writes the prompt to out.
func (c Config) Pacer(in io.Reader, out io.Writer) Pacer {
	if c.Mode == ModePrompt {
		return NewPromptPacer(in, out, StepPrompt)
	}
	return TimedPacer(c.Interval)
}
