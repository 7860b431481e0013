package gridgraph

import "fmt"

// Blocked is the cost sentinel of an impassable cell.
const Blocked = -1

// Cell is a (row, col) grid coordinate.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row, col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Adjacent reports whether o is one of the four orthogonal neighbours of c.
func (c Cell) Adjacent(o Cell) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// offsets lists neighbour deltas in the fixed order up, right, down, left.
// Path search pushes neighbours in this order, which keeps ties reproducible.
var offsets = [4]Cell{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is an immutable cost grid with a start and a target cell.
// costs[Index(c)] holds the entry cost of c, or Blocked.
type Grid struct {
	height, width int
	costs         []int
	start, target Cell
}
