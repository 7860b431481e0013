// Package dijkstra_test provides examples demonstrating the grid PathFinder.
// Each example is runnable via “go test -run Example”.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/voidwalk/dijkstra"
	"github.com/katalvlaran/voidwalk/gridgraph"
)

// ExampleRoute routes around a blocked centre cell. The target costs nothing
// to enter, so the three unit cells on the way give a total of 3.
func ExampleRoute() {
	b := gridgraph.Blocked
	g, err := gridgraph.New([][]int{
		{1, 1, 1},
		{1, b, 1},
		{1, 1, 1},
	}, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dijkstra.Route(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)
	// Output: [(0, 0) (0, 1) (0, 2) (1, 2) (2, 2)] 3
}

// ExamplePathFinder_Solve reuses one PathFinder for several endpoints and
// branches on Found for the unreachable case.
func ExamplePathFinder_Solve() {
	b := gridgraph.Blocked
	g, _ := gridgraph.New([][]int{
		{0, 4, b, 2},
		{3, 1, b, 0},
	}, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 1, Col: 3})

	pf, _ := dijkstra.New(g)
	for _, to := range []gridgraph.Cell{{Row: 1, Col: 1}, g.Target()} {
		res, _ := pf.Solve(g.Start(), to)
		if !res.Found() {
			fmt.Printf("%v: unreachable\n", to)
			continue
		}
		fmt.Printf("%v: cost %d via %v\n", to, res.Cost, res.Path)
	}
	// Output:
	// (1, 1): cost 4 via [(0, 0) (1, 0) (1, 1)]
	// (1, 3): unreachable
}
