// Package dijkstra finds the cheapest route across a gridgraph.Grid.
//
// Overview:
//
//   - A PathFinder builds the navigable adjacency of a grid once: every
//     passable cell gets an edge to each passable orthogonal neighbour, weighted
//     by the neighbour's entry cost. Blocked cells have no edges in or out.
//   - Solve runs single-source Dijkstra from start and stops as soon as the
//     target is finalised, then walks predecessors back to rebuild the path.
//   - Edge weights are entry costs, so the start cell is never charged and the
//     total cost is the sum of the costs of every cell after the first.
//
// Determinism:
//
//	The heap orders entries by (cost, insertion sequence) and neighbours are
//	pushed in the order up, right, down, left. Equal-cost frontier cells are
//	therefore finalised first-in first-out, and repeated solves on the same
//	grid return identical paths.
//
// Unreachable targets:
//
//	An unreachable target is a result, not an error: Result.Path is empty and
//	Result.Cost is Unreachable. Callers branch on Result.Found.
//
// Performance and complexity (V = cells, E ≤ 4V edges):
//
//   - New:   O(V) time and memory.
//   - Solve: O((V + E) log V) time; O(V + E) memory under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:         New or Solve was given a nil grid.
//   - ErrCellOutOfBounds: start or target lies outside the grid.
//   - ErrBadMaxDistance:  raised via panic by WithMaxDistance(d < 0).
package dijkstra
