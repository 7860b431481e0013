// Package dijkstra_test contains unit tests for the grid PathFinder.
// They cover validation, the reference scenarios, unreachable targets,
// determinism, option handling, and randomized cross-checks against a
// Bellman–Ford reference.
package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voidwalk/dijkstra"
	"github.com/katalvlaran/voidwalk/gridgraph"
)

const B = gridgraph.Blocked

func cell(r, c int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: c} }

// mustGrid builds a grid or fails the test.
func mustGrid(t *testing.T, values [][]int, start, target gridgraph.Cell) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.New(values, start, target)
	require.NoError(t, err)
	return g
}

// requireValidPath asserts the structural path invariants and that Cost is
// the sum of entry costs of every cell after the first.
func requireValidPath(t *testing.T, g *gridgraph.Grid, start, target gridgraph.Cell, res dijkstra.Result) {
	t.Helper()
	require.True(t, res.Found())
	require.Equal(t, start, res.Path[0])
	require.Equal(t, target, res.Path[len(res.Path)-1])

	var sum int64
	for i := 1; i < len(res.Path); i++ {
		require.True(t, res.Path[i-1].Adjacent(res.Path[i]), "step %d: %v -> %v", i, res.Path[i-1], res.Path[i])
		cost, ok := g.CellCost(res.Path[i])
		require.True(t, ok, "path enters blocked cell %v", res.Path[i])
		sum += int64(cost)
	}
	require.True(t, g.Passable(res.Path[0]))
	require.Equal(t, sum, res.Cost)
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestNew_NilGrid(t *testing.T) {
	_, err := dijkstra.New(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGrid)

	_, err = dijkstra.Route(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGrid)
}

func TestSolve_OutOfBounds(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 1}}, cell(0, 0), cell(0, 1))
	pf, err := dijkstra.New(g)
	require.NoError(t, err)

	_, err = pf.Solve(cell(-1, 0), cell(0, 1))
	require.ErrorIs(t, err, dijkstra.ErrCellOutOfBounds)
	_, err = pf.Solve(cell(0, 0), cell(0, 2))
	require.ErrorIs(t, err, dijkstra.ErrCellOutOfBounds)
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

// TestSolve_RingAroundCenter routes around a blocked centre.
//
//	1 1 1
//	1 B 1
//	1 1 1
func TestSolve_RingAroundCenter(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 1},
		{1, B, 1},
		{1, 1, 1},
	}, cell(0, 0), cell(2, 2))

	res, err := dijkstra.Route(g)
	require.NoError(t, err)
	requireValidPath(t, g, g.Start(), g.Target(), res)

	assert.Equal(t, int64(3), res.Cost)
	// FIFO ties with up/right/down/left expansion settle on the top-right route.
	assert.Equal(t, []gridgraph.Cell{cell(0, 0), cell(0, 1), cell(0, 2), cell(1, 2), cell(2, 2)}, res.Path)
}

// TestSolve_SingleRowWall is unreachable: [[5, B, 5]].
func TestSolve_SingleRowWall(t *testing.T) {
	g := mustGrid(t, [][]int{{5, B, 5}}, cell(0, 0), cell(0, 2))

	res, err := dijkstra.Route(g)
	require.NoError(t, err, "an unreachable target is not an error")
	assert.False(t, res.Found())
	assert.Empty(t, res.Path)
	assert.Equal(t, dijkstra.Unreachable, res.Cost)
}

// TestSolve_SameCell returns ([start], 0).
func TestSolve_SameCell(t *testing.T) {
	g := mustGrid(t, [][]int{{4, 4}, {4, 4}}, cell(1, 1), cell(1, 1))

	res, err := dijkstra.Route(g)
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{cell(1, 1)}, res.Path)
	assert.Zero(t, res.Cost)
	assert.True(t, res.Found())
}

// TestSolve_EnclosedTarget surrounds the target with obstacles.
func TestSolve_EnclosedTarget(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 1, 1, 1},
		{1, 1, B, 1, 1},
		{1, B, 0, B, 1},
		{1, 1, B, 1, 1},
	}, cell(0, 0), cell(2, 2))

	res, err := dijkstra.Route(g)
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.Equal(t, dijkstra.Unreachable, res.Cost)
}

// TestSolve_PrefersCheapDetour takes a long cheap route over a short expensive one.
//
//	0 9 0
//	1 9 1
//	1 1 1
func TestSolve_PrefersCheapDetour(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 9, 0},
		{1, 9, 1},
		{1, 1, 1},
	}, cell(0, 0), cell(0, 2))

	res, err := dijkstra.Route(g)
	require.NoError(t, err)
	requireValidPath(t, g, g.Start(), g.Target(), res)
	assert.Equal(t, int64(5), res.Cost)
	assert.Len(t, res.Path, 7)
}

// TestSolve_EntryCostOnDestination checks that the start cost is never charged
// and each entered cell is charged once.
func TestSolve_EntryCostOnDestination(t *testing.T) {
	g := mustGrid(t, [][]int{{7, 2, 3, 4}}, cell(0, 0), cell(0, 3))
	pf, err := dijkstra.New(g)
	require.NoError(t, err)

	res, err := pf.Solve(cell(0, 0), cell(0, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Cost) // 2 + 3

	// Solving backwards charges the normalised start (0) on entry.
	res, err = pf.Solve(cell(0, 2), cell(0, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Cost) // 2 + 0
}

// TestSolve_Corridor walks the built-in serpentine preset.
func TestSolve_Corridor(t *testing.T) {
	g := gridgraph.Corridor()
	res, err := dijkstra.Route(g)
	require.NoError(t, err)
	requireValidPath(t, g, g.Start(), g.Target(), res)
	assert.Equal(t, int64(235), res.Cost)
	assert.Len(t, res.Path, 237)
}

// TestSolve_LargeCostsStayExact routes through cells at the largest accepted
// cost: the total is the exact sum, positive and distinct from Unreachable.
func TestSolve_LargeCostsStayExact(t *testing.T) {
	big := int(gridgraph.MaxCellCost(5))
	g := mustGrid(t, [][]int{{0, big, big, big, 0}}, cell(0, 0), cell(0, 4))

	res, err := dijkstra.Route(g)
	require.NoError(t, err)
	requireValidPath(t, g, g.Start(), g.Target(), res)
	assert.Equal(t, 3*int64(big), res.Cost)
	assert.Positive(t, res.Cost)
	assert.Less(t, res.Cost, dijkstra.Unreachable)
	assert.True(t, g.Reachable(g.Start(), g.Target()))
}

// ------------------------------------------------------------------------
// 3. Options
// ------------------------------------------------------------------------

func TestWithMaxDistance(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 2, 2, 2, 0}}, cell(0, 0), cell(0, 4))

	res, err := dijkstra.Route(g, dijkstra.WithMaxDistance(6))
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.Cost)

	res, err = dijkstra.Route(g, dijkstra.WithMaxDistance(5))
	require.NoError(t, err)
	assert.False(t, res.Found(), "target beyond the cap is unreachable")

	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
}

func TestWithOnFinalize(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 1},
		{1, B, 1},
		{1, 1, 1},
	}, cell(0, 0), cell(2, 2))

	var order []gridgraph.Cell
	var costs []int64
	_, err := dijkstra.Route(g, dijkstra.WithOnFinalize(func(c gridgraph.Cell, d int64) {
		order = append(order, c)
		costs = append(costs, d)
	}))
	require.NoError(t, err)

	assert.Equal(t, []gridgraph.Cell{
		cell(0, 0), cell(0, 1), cell(1, 0), cell(0, 2), cell(2, 0), cell(1, 2), cell(2, 1), cell(2, 2),
	}, order, "each cell is finalised once, cheapest first, FIFO among ties")
	assert.IsNonDecreasing(t, costs)
}

// ------------------------------------------------------------------------
// 4. Determinism and randomized cross-checks
// ------------------------------------------------------------------------

func TestSolve_Deterministic(t *testing.T) {
	g, err := gridgraph.Generate(12, 18, cell(0, 0), cell(11, 17),
		gridgraph.WithSeed(3), gridgraph.WithBlockProbability(0.2))
	require.NoError(t, err)

	first, err := dijkstra.Route(g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := dijkstra.Route(g)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

// bellmanFord is an independent O(V·E) reference for the optimal entry cost.
func bellmanFord(g *gridgraph.Grid, start, target gridgraph.Cell) int64 {
	dist := make([]int64, g.Len())
	for i := range dist {
		dist[i] = dijkstra.Unreachable
	}
	dist[g.Index(start)] = 0
	for round := 0; round < g.Len(); round++ {
		changed := false
		for i := range dist {
			if dist[i] == dijkstra.Unreachable {
				continue
			}
			for _, n := range g.Neighbors(g.Coordinate(i)) {
				w, _ := g.CellCost(n)
				if nd := dist[i] + int64(w); nd < dist[g.Index(n)] {
					dist[g.Index(n)] = nd
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	return dist[g.Index(target)]
}

// TestSolve_MatchesReference compares against Bellman–Ford and flood-fill
// reachability on many seeded random grids.
func TestSolve_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < 200; i++ {
		h, w := 1+rng.Intn(10), 1+rng.Intn(12)
		start := cell(rng.Intn(h), rng.Intn(w))
		target := cell(rng.Intn(h), rng.Intn(w))
		g, err := gridgraph.Generate(h, w, start, target, gridgraph.WithRand(rng))
		require.NoError(t, err)

		res, err := dijkstra.Route(g)
		require.NoError(t, err)

		want := bellmanFord(g, start, target)
		require.Equal(t, want, res.Cost, "grid %d (%dx%d) %v -> %v", i, h, w, start, target)
		require.Equal(t, g.Reachable(start, target), res.Found())
		if res.Found() {
			requireValidPath(t, g, start, target, res)
		} else {
			require.Empty(t, res.Path)
		}
	}
}

// TestSolve_OpenFieldCost checks that without obstacles a path always exists.
func TestSolve_OpenFieldCost(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		h, w := 1+rng.Intn(8), 1+rng.Intn(8)
		g, err := gridgraph.Generate(h, w, cell(0, 0), cell(h-1, w-1),
			gridgraph.WithRand(rng), gridgraph.WithBlockProbability(0))
		require.NoError(t, err)

		res, err := dijkstra.Route(g)
		require.NoError(t, err)
		requireValidPath(t, g, g.Start(), g.Target(), res)
	}
}
