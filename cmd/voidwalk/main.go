// Command voidwalk shows a creature walking the cheapest route across a grid
// of entry costs.
//
// Usage:
//
//	voidwalk random                 # endless random grids, "e" stops
//	voidwalk preset [grid.yaml]     # a YAML preset, or the built-in corridor
//	voidwalk inspect [grid.yaml]    # describe a grid without animating it
//
// Settings come from VOIDWALK_* environment variables (optionally loaded
// from a .env file) and are overridden by flags.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const farewell = "The creature rests."

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd(bufio.NewReader(stdin), stdout, stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	fmt.Fprintln(stdout, farewell)
	if err != nil {
		return 1
	}
	return 0
}
