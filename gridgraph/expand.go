package gridgraph

import (
	"container/list"
	"fmt"
)

// Breach finds a route from one cell to another that crosses the fewest
// blocked cells, ignoring entry costs. It explains why no path exists:
// walls is the number of obstacles that would have to be cleared.
// The route includes both endpoints; walls is 0 when the cells are already
// connected.
//
// Behavior:
//  1. Validate both cells are in bounds.
//  2. 0–1 BFS from `from`:
//     • Moving into a passable cell → cost 0
//     • Moving into a blocked cell  → cost 1
//  3. Stop when `to` is popped.
//  4. Reconstruct the route via predecessors.
//
// Complexity: O(W·H) time, Memory: O(W·H) for distance and prev slices.
func (g *Grid) Breach(from, to Cell) (route []Cell, walls int, err error) {
	// 1) Validate both endpoints.
	if !g.InBounds(from) || !g.InBounds(to) {
		return nil, 0, fmt.Errorf("%w: breach %v -> %v", ErrOutOfBounds, from, to)
	}

	// 2) dist counts walls crossed so far; prev links the best route.
	n := len(g.costs)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 3) Seed the deque with the source. Zero-cost moves go to the front and
	//    wall crossings to the back, so cells leave in non-decreasing dist.
	src, dst := g.Index(from), g.Index(to)
	dist[src] = 0
	dq := list.New()
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)

		// 4) The first time dst leaves the deque its wall count is final.
		if u == dst {
			break
		}

		// 5) Walls are traversable here, so every in-bounds neighbour counts.
		uc := g.Coordinate(u)
		for _, d := range offsets {
			vc := Cell{Row: uc.Row + d.Row, Col: uc.Col + d.Col}
			if !g.InBounds(vc) {
				continue
			}
			v := g.Index(vc)

			// 6) Entering a blocked cell costs one wall, anything else is free.
			step := 0
			if g.costs[v] == Blocked {
				step = 1
			}

			// 7) Relax; a cell may be re-queued when a cheaper route appears.
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// 8) Every in-bounds cell is reachable when walls may be crossed, so the
	//    predecessor chain always leads back to from.
	for at := dst; at >= 0; at = prev[at] {
		route = append(route, g.Coordinate(at))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route, dist[dst], nil
}
