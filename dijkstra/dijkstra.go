package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/voidwalk/gridgraph"
)

// edge is a directed step into arena cell `to`, costing that cell's entry cost.
type edge struct {
	to     int
	weight int64
}

// PathFinder holds the navigable adjacency of one grid. It borrows the grid
// read-only and may be solved repeatedly for different endpoints.
type PathFinder struct {
	grid    *gridgraph.Grid
	adj     [][]edge // adj[i] lists the edges leaving arena cell i
	options Options
}

// New builds the adjacency of g eagerly: for each passable cell, one edge per
// passable orthogonal neighbour, in the order up, right, down, left.
// Returns ErrNilGrid if g is nil.
// Complexity: O(V) time and memory.
func New(g *gridgraph.Grid, opts ...Option) (*PathFinder, error) {
	// 1) Validate the grid.
	if g == nil {
		return nil, ErrNilGrid
	}

	// 2) Apply functional options over the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) One edge per passable neighbour, weighted by the neighbour's entry cost.
	//    Blocked cells have no neighbours, so they get no outgoing edges, and
	//    Neighbors never returns them, so they get no incoming ones either.
	adj := make([][]edge, g.Len())
	for i := range adj {
		for _, n := range g.Neighbors(g.Coordinate(i)) {
			w, _ := g.CellCost(n)
			adj[i] = append(adj[i], edge{to: g.Index(n), weight: int64(w)})
		}
	}

	return &PathFinder{grid: g, adj: adj, options: cfg}, nil
}

// Solve computes the cheapest path from start to target.
//
// Returns:
//
//   - Result{[start], 0} when start == target.
//   - Result{nil, Unreachable} when no path exists (not an error).
//   - ErrCellOutOfBounds if either endpoint lies outside the grid.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func (pf *PathFinder) Solve(start, target gridgraph.Cell) (Result, error) {
	// 1) Validate both endpoints.
	if !pf.grid.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start %v", ErrCellOutOfBounds, start)
	}
	if !pf.grid.InBounds(target) {
		return Result{}, fmt.Errorf("%w: target %v", ErrCellOutOfBounds, target)
	}
	// 2) Nothing to search: the creature already stands on the target.
	if start == target {
		return Result{Path: []gridgraph.Cell{start}, Cost: 0}, nil
	}

	// 3) Run the main loop, then walk predecessors back from the target.
	r := newRunner(pf, pf.grid.Index(start), pf.grid.Index(target))
	r.process()

	return r.result(), nil
}

// Solve is a convenience wrapper building a PathFinder for a single search.
func Solve(g *gridgraph.Grid, start, target gridgraph.Cell, opts ...Option) (Result, error) {
	pf, err := New(g, opts...)
	if err != nil {
		return Result{}, err
	}
	return pf.Solve(start, target)
}

// Route solves from the grid's own start to its own target.
func Route(g *gridgraph.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	return Solve(g, g.Start(), g.Target(), opts...)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	pf      *PathFinder
	source  int
	target  int
	dist    []int64 // best known cost from source per arena cell
	prev    []int   // predecessor on the best known path, -1 for none
	visited []bool  // finalised cells
	pq      nodePQ
	seq     uint64 // insertion counter used for FIFO tie-breaking
}

// newRunner sets dist[source] = 0 and seeds the heap with the source.
func newRunner(pf *PathFinder, source, target int) *runner {
	n := len(pf.adj)
	r := &runner{
		pf:      pf,
		source:  source,
		target:  target,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	// 1) dist[v] = +∞ (MaxInt64) and no predecessor for every cell.
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
		r.prev[i] = -1
	}

	// 2) Distance to the source is zero.
	r.dist[source] = 0

	// 3) Initialise the heap and push the source with distance 0.
	heap.Init(&r.pq)
	r.push(source, 0)

	return r
}

// push adds (cell, dist) to the heap, stamping it with the next sequence number.
func (r *runner) push(cell int, dist int64) {
	heap.Push(&r.pq, &nodeItem{cell: cell, dist: dist, seq: r.seq})
	r.seq++
}

// process is the main loop. It stops when the heap empties, when the
// cheapest entry exceeds MaxDistance, or when the target is finalised.
func (r *runner) process() {
	cfg := r.pf.options
	for r.pq.Len() > 0 {
		// 1) Extract the cheapest entry; FIFO among equal costs.
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.cell, item.dist

		// 2) Skip stale duplicates left behind by lazy decrease-key.
		if r.visited[u] {
			continue
		}

		// 3) Everything left in the heap is at least as far; stop at the cap.
		if d > cfg.MaxDistance {
			break
		}

		// 4) Finalise u exactly once and report it.
		r.visited[u] = true
		cfg.OnFinalize(r.pf.grid.Coordinate(u), d)

		// 5) Early exit: the target's cost can no longer improve.
		if u == r.target {
			return
		}

		// 6) Relax u's outgoing edges.
		r.relax(u, d)
	}
}

// relax pushes every unvisited neighbour of u whose cost strictly improves.
func (r *runner) relax(u int, d int64) {
	for _, e := range r.pf.adj[u] {
		// 1) Finalised neighbours never change.
		if r.visited[e.to] {
			continue
		}

		// 2) Candidate cost. Grid costs are capped at gridgraph.MaxCellCost,
		//    so the sum of a simple path cannot overflow or reach Unreachable.
		nd := d + e.weight

		// 3) Candidates beyond MaxDistance are never pushed.
		if nd > r.pf.options.MaxDistance {
			continue
		}

		// 4) Strict "<": equal costs keep the first predecessor found.
		if nd >= r.dist[e.to] {
			continue
		}

		// 5) Record the improvement and push a fresh heap entry.
		r.dist[e.to] = nd
		r.prev[e.to] = u
		r.push(e.to, nd)
	}
}

// result walks predecessors back from the target and reverses them.
func (r *runner) result() Result {
	// 1) A target never finalised is unreachable (or beyond MaxDistance).
	if !r.visited[r.target] {
		return Result{Path: nil, Cost: Unreachable}
	}

	// 2) Follow prev links to the source (prev[source] == -1).
	var path []gridgraph.Cell
	for at := r.target; at >= 0; at = r.prev[at] {
		path = append(path, r.pf.grid.Coordinate(at))
	}

	// 3) Reverse into start → target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{Path: path, Cost: r.dist[r.target]}
}

// nodeItem represents a frontier cell and its tentative cost from the source.
type nodeItem struct {
	cell int    // arena index
	dist int64  // tentative cost
	seq  uint64 // insertion order, breaks cost ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq). Outdated entries
// stay in the heap and are skipped when popped (checked via visited).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by cost, then by insertion order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
