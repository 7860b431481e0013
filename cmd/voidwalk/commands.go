package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/voidwalk/gridgraph"
	"github.com/katalvlaran/voidwalk/render"
	"github.com/katalvlaran/voidwalk/simulation"
)

// app carries the streams shared by every subcommand.
type app struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(in *bufio.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:   "voidwalk",
		Short: "Watch a creature take the cheapest route across a cost grid",
		Long: `voidwalk plans the cheapest route from the creature's start to its
target with Dijkstra's algorithm, then animates the walk one cell at a time.
Obstacles cannot be entered; every other cell charges its value on entry.`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.PersistentFlags().String("env-file", "", "Load VOIDWALK_* settings from this file (default: ./.env if present)")
	rootCmd.PersistentFlags().String("mode", "", "Pacing mode: timed|prompt")
	rootCmd.PersistentFlags().Duration("interval", simulation.DefaultInterval, "Pause between steps in timed mode")
	rootCmd.PersistentFlags().Int64("seed", 0, "Seed for random grids (0 = from the clock)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log run details to stderr")

	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "Walk freshly generated grids until told to stop",
		Args:  cobra.NoArgs,
		RunE:  a.runRandom,
	}

	presetCmd := &cobra.Command{
		Use:   "preset [file]",
		Short: "Walk a YAML preset grid, or the built-in corridor",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runPreset,
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Describe a preset grid: regions, reachability and route cost",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runInspect,
	}

	rootCmd.AddCommand(randomCmd, presetCmd, inspectCmd)
	return rootCmd
}

func (a *app) runRandom(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	src := simulation.NewRandomSource(cfg.Seed, cfg.GridOptions()...)
	return a.session(cmd, cfg, src)
}

func (a *app) runPreset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	g, err := loadGrid(args)
	if err != nil {
		return err
	}
	return a.session(cmd, cfg, simulation.NewPresetSource(g))
}

// session runs src to completion with the console renderer.
func (a *app) session(cmd *cobra.Command, cfg simulation.Config, src simulation.GridSource) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))

	sim := simulation.New(
		render.NewConsole(a.out, isTerminal(a.out)),
		cfg.Pacer(a.in, a.out),
		simulation.WithLogger(logger),
		simulation.WithStartPause(simulation.NewPromptPacer(a.in, a.out, simulation.ContinuePrompt)),
	)
	outcomes, err := sim.Session(cmd.Context(), src, simulation.NewPromptPacer(a.in, a.out, simulation.StepPrompt))
	logger.Info("session finished", "runs", len(outcomes))
	return err
}

// loadConfig reads the environment, then applies any flags the user set.
func loadConfig(cmd *cobra.Command) (simulation.Config, error) {
	flags := cmd.Flags()
	envFile, err := flags.GetString("env-file")
	if err != nil {
		return simulation.Config{}, err
	}
	cfg, err := simulation.LoadConfig(envFile)
	if err != nil {
		return simulation.Config{}, err
	}

	if flags.Changed("mode") {
		mode, _ := flags.GetString("mode")
		cfg.Mode = simulation.ParseMode(mode)
	}
	if flags.Changed("interval") {
		interval, _ := flags.GetDuration("interval")
		cfg.Interval = interval
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetInt64("seed")
		cfg.Seed = seed
	}
	return cfg, cfg.Validate()
}

// loadGrid reads the YAML preset named by args, or returns the corridor.
func loadGrid(args []string) (*gridgraph.Grid, error) {
	if len(args) == 0 {
		return gridgraph.Corridor(), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open preset: %w", err)
	}
	defer f.Close()

	g, err := gridgraph.LoadPreset(f)
	if err != nil {
		return nil, fmt.Errorf("load preset %s: %w", args[0], err)
	}
	return g, nil
}

// isTerminal reports whether w is an interactive terminal, in which case
// frames clear the screen.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
