package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// PathCost sums fn(direction, destination cell) over consecutive steps of
// path. A nil fn means DirectionalCost. Returns ErrBrokenPath if the path is
// empty, leaves the grid, touches a Wall or contains a non-adjacent step.
// Complexity: O(len(path)).
func PathCost(g *gridgraph.Grid, path []gridgraph.Coordinate, fn EdgeCostFunc) (float64, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if fn == nil {
		fn = DirectionalCost
	}
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: empty path", ErrBrokenPath)
	}
	if !g.Passable(path[0]) {
		return 0, fmt.Errorf("%w: %v is not passable", ErrBrokenPath, path[0])
	}

	var total float64
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		d, ok := gridgraph.DirectionBetween(from, to)
		if !ok {
			return 0, fmt.Errorf("%w: %v and %v are not adjacent", ErrBrokenPath, from, to)
		}
		if !g.Passable(to) {
			return 0, fmt.Errorf("%w: %v is not passable", ErrBrokenPath, to)
		}
		cell, _ := g.Get(to)
		total += fn(d, cell)
	}

	return total, nil
}
