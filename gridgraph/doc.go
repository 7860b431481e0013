// Package gridgraph treats a rectangular grid of entry costs as a graph
// that a single creature can walk across.
//
// What:
//
//   - Grid wraps a row-major arena of integer costs with a start and a target cell.
//   - Blocked cells carry the Blocked sentinel; nothing enters or leaves them.
//   - Neighbors enumerates the passable 4-neighbours of a cell (up, right, down, left).
//   - Generate builds a random grid; FromMatrix, LoadPreset and Corridor build preset grids.
//   - Regions and Reachable describe connectivity of passable cells.
//   - Breach finds the route that crosses the fewest blocked cells.
//
// Why:
//
//   - Entry cost is charged on the destination cell, so the start cell is
//     never charged and the target cell is normalised to cost 0.
//   - Cells are addressed by (row, col) and stored in a flat slice, so no
//     pointer graph (and no cycles) exists between cells.
//
// Complexity:
//
//   - New, Generate, FromMatrix: O(W×H) time and memory.
//   - Neighbors:                O(1).
//   - Regions, Reachable:       O(W×H), Memory: O(W×H).
//   - Breach:                   O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrConfiguration wraps every construction failure:
//     ErrEmptyGrid, ErrNonRectangular, ErrOutOfBounds, ErrCostTooLarge,
//     ErrNoTarget, ErrBadPreset.
//   - Entry costs are capped at MaxCellCost(W×H) so path totals fit in int64.
package gridgraph
