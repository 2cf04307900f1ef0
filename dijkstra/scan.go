package dijkstra

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// scanFrontier is the O(V²) frontier: the unsettled set holds every non-Wall
// cell, and pop selects its minimum by a row-major linear scan.
type scanFrontier struct {
	unsettled mapset.Set[int]
	n         int
}

func newScanFrontier(g *gridgraph.Grid) *scanFrontier {
	f := &scanFrontier{
		unsettled: mapset.New[int](),
		n:         g.Len(),
	}
	for i := 0; i < f.n; i++ {
		if g.At(i) != gridgraph.Wall {
			f.unsettled.Put(i)
		}
	}
	return f
}

// push is a no-op: tentative costs live in the runner's dist slice.
func (f *scanFrontier) push(int, float64) {}

// pop settles the unsettled cell with the smallest finite cost, lowest index
// first on ties. Once only +∞ cells remain nothing else is reachable and the
// scan reports exhaustion.
func (f *scanFrontier) pop(dist []float64) (int, bool) {
	best, bestDist := -1, math.Inf(1)
	for i := 0; i < f.n; i++ {
		if !f.unsettled.Has(i) {
			continue
		}
		if dist[i] < bestDist {
			best, bestDist = i, dist[i]
		}
	}
	if best < 0 {
		return -1, false
	}
	f.unsettled.Remove(best)
	return best, true
}

func (f *scanFrontier) settled(idx int) bool {
	return !f.unsettled.Has(idx)
}
