package simulation_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voidwalk/gridgraph"
	"github.com/katalvlaran/voidwalk/simulation"
)

var configKeys = []string{
	simulation.EnvMode,
	simulation.EnvInterval,
	simulation.EnvSeed,
	simulation.EnvBlockProbability,
	simulation.EnvCostMin,
	simulation.EnvCostMax,
}

// clearEnv unsets every config variable for the test and restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, simulation.ModePrompt, simulation.ParseMode(" PROMPT\t"))
	assert.Equal(t, simulation.ModeTimed, simulation.ParseMode("Timed"))
	assert.Error(t, simulation.Config{Mode: simulation.ParseMode("turbo")}.Validate())
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := simulation.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, simulation.DefaultConfig(), cfg)
	assert.Equal(t, simulation.ModeTimed, cfg.Mode)
	assert.Equal(t, 100*time.Millisecond, cfg.Interval)
}

func TestLoadConfig_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv(simulation.EnvMode, " Prompt ")
	t.Setenv(simulation.EnvInterval, "250ms")
	t.Setenv(simulation.EnvSeed, "42")
	t.Setenv(simulation.EnvBlockProbability, "0.1")
	t.Setenv(simulation.EnvCostMin, "2")
	t.Setenv(simulation.EnvCostMax, "5")

	cfg, err := simulation.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, simulation.Config{
		Mode:             simulation.ModePrompt,
		Interval:         250 * time.Millisecond,
		Seed:             42,
		BlockProbability: 0.1,
		MinCost:          2,
		MaxCost:          5,
	}, cfg)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(simulation.EnvSeed, "7")
	path := filepath.Join(t.TempDir(), "voidwalk.env")
	require.NoError(t, os.WriteFile(path, []byte("VOIDWALK_MODE=prompt\nVOIDWALK_SEED=9\n"), 0o600))

	cfg, err := simulation.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, simulation.ModePrompt, cfg.Mode)
	assert.Equal(t, int64(7), cfg.Seed, "the process environment wins over the file")

	_, err = simulation.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorIs(t, err, simulation.ErrConfig)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := []struct {
		key, value string
	}{
		{simulation.EnvMode, "turbo"},
		{simulation.EnvInterval, "soon"},
		{simulation.EnvInterval, "-1s"},
		{simulation.EnvSeed, "x"},
		{simulation.EnvBlockProbability, "1"},
		{simulation.EnvBlockProbability, "half"},
		{simulation.EnvCostMin, "0"},
		{simulation.EnvCostMax, "nine"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			_, err := simulation.LoadConfig("")
			require.ErrorIs(t, err, simulation.ErrConfig)
		})
	}
}

func TestConfig_GridOptions(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.BlockProbability = 0
	cfg.MinCost, cfg.MaxCost = 4, 4

	opts := append([]gridgraph.Option{gridgraph.WithSeed(1)}, cfg.GridOptions()...)
	g, err := gridgraph.Generate(3, 3, cell(0, 0), cell(2, 2), opts...)
	require.NoError(t, err)
	assert.Zero(t, g.BlockedCount())
	c, ok := g.CellCost(cell(1, 1))
	require.True(t, ok)
	assert.Equal(t, 4, c)
}

func TestConfig_Pacer(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Interval = time.Millisecond
	ok, err := cfg.Pacer(nil, nil).Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	cfg.Mode = simulation.ModePrompt
	var out strings.Builder
	ok, err = cfg.Pacer(strings.NewReader("e\n"), &out).Wait(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, simulation.StepPrompt, out.String())
}

func TestTimedPacer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, d := range []time.Duration{0, time.Hour} {
		ok, err := simulation.TimedPacer(d).Wait(ctx)
		require.NoError(t, err)
		assert.False(t, ok, "interval %v", d)
	}
}

func TestPromptPacer_Answers(t *testing.T) {
	var out strings.Builder
	p := simulation.NewPromptPacer(strings.NewReader("\nyes\n  E  \nlast"), &out, "? ")
	ctx := context.Background()

	for _, want := range []bool{true, true, false, true, false} {
		ok, err := p.Wait(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, ok)
	}
	assert.Equal(t, strings.Repeat("? ", 5), out.String())
}

func TestRandomSource(t *testing.T) {
	a := simulation.NewRandomSource(77)
	b := simulation.NewRandomSource(77)
	assert.True(t, a.Repeats())

	for i := 0; i < 100; i++ {
		ga, err := a.Next()
		require.NoError(t, err)
		gb, err := b.Next()
		require.NoError(t, err)
		require.Equal(t, ga.Values(), gb.Values(), "same seed, same grids")

		h, w := ga.Dimensions()
		require.True(t, h >= 1 && h <= simulation.MaxRandomHeight)
		require.True(t, w >= 1 && w <= simulation.MaxRandomWidth)
		require.Equal(t, cell(0, 0), ga.Start())
		tg := ga.Target()
		require.True(t, tg.Row >= h/2 && tg.Row < h, "target row %d of %d", tg.Row, h)
		require.True(t, tg.Col >= w/2 && tg.Col < w, "target col %d of %d", tg.Col, w)
	}
}

func TestPresetSource(t *testing.T) {
	g := ringGrid(t)
	src := simulation.NewPresetSource(g)
	assert.False(t, src.Repeats())

	got, err := src.Next()
	require.NoError(t, err)
	assert.Same(t, g, got)
	_, err = src.Next()
	require.ErrorIs(t, err, simulation.ErrSourceExhausted)
}
