// Package gridgraph provides utilities to treat a 2D grid of entry costs
// as a 4-connected graph. Cells holding Blocked are impassable; every other
// cell costs its value to enter.
package gridgraph

import (
	"fmt"
	"math"
)

// MaxCellCost returns the largest entry cost New accepts for a grid of the
// given number of cells: any simple path then sums to less than math.MaxInt64,
// so path totals never overflow or reach the unreachable sentinel.
func MaxCellCost(cells int) int64 {
	if cells <= 0 {
		return 0
	}
	return (math.MaxInt64 - 1) / int64(cells)
}

// New constructs a Grid from a non-empty, rectangular 2D slice of costs.
// It deep-copies the input to ensure immutability. Negative values are
// stored as Blocked. The start cell's cost is cleared (the creature already
// stands there) and the target cell's cost is forced to 0; both overwrite
// Blocked, so neither endpoint is ever impassable.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrOutOfBounds if start
// or target lie outside the grid, and ErrCostTooLarge if a cell other than
// start or target costs more than MaxCellCost(height*width).
// Algorithmic complexity: O(W×H) time and memory.
func New(values [][]int, start, target Cell) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	g := &Grid{height: h, width: w, costs: make([]int, h*w), start: start, target: target}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, h, w)
	}
	if !g.InBounds(target) {
		return nil, fmt.Errorf("%w: target %v in %dx%d grid", ErrOutOfBounds, target, h, w)
	}
	// Flatten into the row-major arena.
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			v := values[r][c]
			if v < 0 {
				v = Blocked
			}
			g.costs[r*w+c] = v
		}
	}
	g.normalize()

	// Bound every remaining cost so path sums stay below math.MaxInt64.
	limit := MaxCellCost(len(g.costs))
	for i, v := range g.costs {
		if int64(v) > limit {
			return nil, fmt.Errorf("%w: cell %v costs %d, limit %d for %d cells",
				ErrCostTooLarge, g.Coordinate(i), v, limit, len(g.costs))
		}
	}

	return g, nil
}

// normalize clears the start cost and zeroes the target cost.
func (g *Grid) normalize() {
	g.costs[g.Index(g.start)] = 0
	g.costs[g.Index(g.target)] = 0
}

// Dimensions returns the grid height (rows) and width (columns).
func (g *Grid) Dimensions() (height, width int) {
	return g.height, g.width
}

// Start returns the cell the creature starts on.
func (g *Grid) Start() Cell { return g.start }

// Target returns the cell the creature is heading for.
func (g *Grid) Target() Cell { return g.target }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// Passable reports whether c is in bounds and not blocked.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && g.costs[g.Index(c)] != Blocked
}

// CellCost returns the cost to enter c. The boolean is false when c is out
// of bounds or blocked; the returned cost is then Blocked.
// Complexity: O(1).
func (g *Grid) CellCost(c Cell) (int, bool) {
	if !g.Passable(c) {
		return Blocked, false
	}
	return g.costs[g.Index(c)], true
}

// Neighbors returns the passable orthogonal neighbours of c in the order
// up, right, down, left. A blocked or out-of-bounds c has no neighbours.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	if !g.Passable(c) {
		return nil
	}
	out := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.Passable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Values returns a deep copy of the cost matrix, Blocked marking walls.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.height)
	for r := range out {
		out[r] = make([]int, g.width)
		copy(out[r], g.costs[r*g.width:(r+1)*g.width])
	}
	return out
}

// BlockedCount returns the number of impassable cells.
func (g *Grid) BlockedCount() int {
	n := 0
	for _, v := range g.costs {
		if v == Blocked {
			n++
		}
	}
	return n
}

// Len returns the number of cells, i.e. the size of the arena.
func (g *Grid) Len() int { return len(g.costs) }

// Index maps c to its row-major arena index: Row*width + Col.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.width + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.width, Col: idx % g.width}
}
