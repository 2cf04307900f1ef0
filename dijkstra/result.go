package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// PathResult is the outcome of a shortest-path query: the ordered
// coordinates from start to destination inclusive and their total cost.
// The unreachable sentinel has an empty Path and Cost = +Inf.
type PathResult struct {
	Path []gridgraph.Coordinate
	Cost float64
}

// Unreachable returns the sentinel result for a disconnected destination.
func Unreachable() PathResult {
	return PathResult{Cost: math.Inf(1)}
}

// Reachable reports whether the result holds a path.
func (r PathResult) Reachable() bool {
	return len(r.Path) > 0 && !math.IsInf(r.Cost, 1)
}

// Len returns the number of coordinates on the path.
func (r PathResult) Len() int {
	return len(r.Path)
}

// Steps returns the direction of every move along the path.
func (r PathResult) Steps() []gridgraph.Direction {
	if len(r.Path) < 2 {
		return nil
	}
	steps := make([]gridgraph.Direction, 0, len(r.Path)-1)
	for i := 1; i < len(r.Path); i++ {
		d, ok := gridgraph.DirectionBetween(r.Path[i-1], r.Path[i])
		if !ok {
			return nil
		}
		steps = append(steps, d)
	}
	return steps
}

// Render draws the path over g in the overlay text form.
func (r PathResult) Render(g *gridgraph.Grid) string {
	return g.RenderPath(r.Path)
}

// String summarises the result, e.g. "cost=6.5 length=8".
func (r PathResult) String() string {
	if !r.Reachable() {
		return "unreachable"
	}
	return fmt.Sprintf("cost=%g length=%d", r.Cost, len(r.Path))
}
