package gridgraph

// Regions finds all 4-connected regions of passable cells.
// Regions are listed in row-major order of their first cell; cells within a
// region are listed in BFS discovery order from that cell.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]Cell {
	seen := make([]bool, len(g.costs))
	var regions [][]Cell

	for i, v := range g.costs {
		if v == Blocked || seen[i] {
			continue
		}
		regions = append(regions, g.flood(g.Coordinate(i), seen))
	}
	return regions
}

// Reachable reports whether b can be reached from a by passable steps.
// A cell is always reachable from itself when it is passable.
func (g *Grid) Reachable(a, b Cell) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	seen := make([]bool, len(g.costs))
	g.flood(a, seen)
	return seen[g.Index(b)]
}

// flood collects the region around from, marking every cell it touches in seen.
func (g *Grid) flood(from Cell, seen []bool) []Cell {
	queue := []Cell{from}
	seen[g.Index(from)] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			ni := g.Index(n)
			if !seen[ni] {
				seen[ni] = true
				queue = append(queue, n)
			}
		}
	}
	return queue
}
