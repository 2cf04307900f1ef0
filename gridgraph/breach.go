package gridgraph

import (
	"container/list"
)

// WallBreach finds a route from `from` to `to` that crosses the fewest Wall
// cells. Turning the returned walls into Open cells makes `to` reachable.
// Returns the route (both ends included) and the walls on it in route order.
//
// Behavior:
//  1. Validate both coordinates (ErrOutOfBounds).
//  2. 0–1 BFS from `from`:
//     • Moving into a passable cell → cost 0
//     • Moving into a Wall          → cost 1
//  3. Stop when `to` is popped; neighbors expand in North, South, West,
//     East order so the result is deterministic.
//  4. Reconstruct the route via predecessors.
//
// A grid is always 4-connected once walls are allowed, so a route exists for
// any two in-bounds cells.
//
// Complexity: O(rows·cols) time and memory.
func (g *Grid) WallBreach(from, to Coordinate) (route []Coordinate, walls []Coordinate, err error) {
	if !g.InBounds(from) || !g.InBounds(to) {
		return nil, nil, ErrOutOfBounds
	}

	n := len(g.cells)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	src, dst := g.Index(from), g.Index(to)
	dist[src] = 0
	if g.cells[src] == Wall {
		dist[src] = 1
	}
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			break
		}
		ucoord := g.Coordinate(u)
		for _, d := range directions {
			vc := ucoord.Step(d)
			if !g.InBounds(vc) {
				continue
			}
			v := g.Index(vc)
			step := 0
			if g.cells[v] == Wall {
				step = 1
			}
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

	// Reconstruct route
	for at := dst; at >= 0; at = prev[at] {
		route = append(route, g.Coordinate(at))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	for _, c := range route {
		if g.cells[g.Index(c)] == Wall {
			walls = append(walls, c)
		}
	}
	return route, walls, nil
}
