package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/voidwalk/dijkstra"
	"github.com/katalvlaran/voidwalk/gridgraph"
	"github.com/katalvlaran/voidwalk/render"
)

func (a *app) runInspect(_ *cobra.Command, args []string) error {
	g, err := loadGrid(args)
	if err != nil {
		return err
	}
	return describe(a.out, g)
}

// describe prints the shape of g and what stands between its start and target.
func describe(w io.Writer, g *gridgraph.Grid) error {
	h, wd := g.Dimensions()
	regions := g.Regions()
	largest := 0
	for _, r := range regions {
		largest = max(largest, len(r))
	}

	fmt.Fprintf(w, "Dimensions: %d x %d (%s cells)\n", h, wd, humanize.Comma(int64(g.Len())))
	fmt.Fprintf(w, "Obstacles: %s\n", humanize.Comma(int64(g.BlockedCount())))
	fmt.Fprintf(w, "Regions: %s (largest %s cells)\n",
		humanize.Comma(int64(len(regions))), humanize.Comma(int64(largest)))
	fmt.Fprintf(w, "Start: %v  Target: %v\n", g.Start(), g.Target())
	fmt.Fprintf(w, "Reachable: %t\n", g.Reachable(g.Start(), g.Target()))

	res, err := dijkstra.Route(g)
	if err != nil {
		return err
	}
	if res.Found() {
		_, err = fmt.Fprintf(w, "Projected cost: %s over %s steps\nPath: %s\n",
			humanize.Comma(res.Cost), humanize.Comma(int64(len(res.Path)-1)), render.FormatPath(res.Path))
		return err
	}

	_, walls, err := g.Breach(g.Start(), g.Target())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\nWalls in the way: %s\n", render.NoPathMessage, humanize.Comma(int64(walls)))
	return err
}
