package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ShortestPath computes the minimum-cost walk from start to dest over g.
//
// Returns:
//
//   - PathResult with Path[0] == start, Path[len-1] == dest and the exact
//     sum of edge costs, or the unreachable sentinel if no walk exists.
//   - err if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. The cost function must be non-nil (ErrNilCostFunc).
//  3. start and dest must be in bounds and not Wall (ErrMissingEndpoint).
//
// start == dest yields Path = [start], Cost = 0.
//
// Complexity:
//
//   - StrategyHeap: O(E log V), StrategyScan: O(V²)
//   - Space: O(V)
func ShortestPath(g *gridgraph.Grid, start, dest gridgraph.Coordinate, opts ...Option) (PathResult, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Unreachable(), ErrNilGrid
	}
	if cfg.CostFunc == nil {
		return Unreachable(), ErrNilCostFunc
	}

	// 2) Both endpoints must be usable cells.
	if !g.Passable(start) {
		return Unreachable(), fmt.Errorf("%w: start %v is off-grid or a wall", ErrMissingEndpoint, start)
	}
	if !g.Passable(dest) {
		return Unreachable(), fmt.Errorf("%w: destination %v is off-grid or a wall", ErrMissingEndpoint, dest)
	}

	// 3) Trivial query.
	if start == dest {
		return PathResult{Path: []gridgraph.Coordinate{start}, Cost: 0}, nil
	}

	// 4) Run the main loop and rebuild the path from parent links.
	r := newRunner(g, cfg, g.Index(start), g.Index(dest))
	if err := r.process(); err != nil {
		return Unreachable(), err
	}

	return r.path(), nil
}

// SolveGrid looks up the grid's Start and Destination cells and returns the
// shortest path between them. Returns ErrMissingEndpoint if either is absent.
func SolveGrid(g *gridgraph.Grid, opts ...Option) (PathResult, error) {
	if g == nil {
		return Unreachable(), ErrNilGrid
	}
	start, ok := g.FindStart()
	if !ok {
		return Unreachable(), fmt.Errorf("%w: no start cell", ErrMissingEndpoint)
	}
	dest, ok := g.FindDestination()
	if !ok {
		return Unreachable(), fmt.Errorf("%w: no destination cell", ErrMissingEndpoint)
	}
	return ShortestPath(g, start, dest, opts...)
}

// Every non-Wall cell starts unsettled with tentative cost +∞, except the
// start at 0. The loop settles the unsettled cell of minimum tentative cost
// and relaxes its 4-neighbors, stopping once the destination is settled.
// Early exit is sound because edge costs are non-negative.
//
//   - Ties are broken by row-major index, so paths are identical across
//     strategies.
//   - Only still-unsettled neighbors are relaxed, and only on strict
//     improvement, so a cell's parent is the first settled cell that reached
//     it at its final cost.
//
// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g     *gridgraph.Grid // The input grid; read-only within Dijkstra.
	cost  EdgeCostFunc    // Edge-cost model.
	src   int             // Row-major index of the start cell.
	dst   int             // Row-major index of the destination cell.
	dist  []float64       // Index → current best cost from src.
	prev  []int           // Index → parent on the best path, -1 if none.
	front frontier        // Unsettled cells and min selection.
}

// frontier abstracts how the next cell to settle is chosen.
type frontier interface {
	// push records that idx now has tentative cost d.
	push(idx int, d float64)
	// pop removes and returns the unsettled cell of minimum cost; false when
	// no reachable unsettled cell remains.
	pop(dist []float64) (int, bool)
	// settled reports whether idx has been finalized.
	settled(idx int) bool
}

// newRunner initializes distances, parents and the chosen frontier.
func newRunner(g *gridgraph.Grid, cfg Options, src, dst int) *runner {
	n := g.Len()
	r := &runner{
		g:    g,
		cost: cfg.CostFunc,
		src:  src,
		dst:  dst,
		dist: make([]float64, n),
		prev: make([]int, n),
	}
	for i := 0; i < n; i++ {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[src] = 0

	switch cfg.Strategy {
	case StrategyScan:
		r.front = newScanFrontier(g)
	default:
		r.front = newHeapFrontier(n)
	}
	r.front.push(src, 0)

	return r
}

// process is the core loop: settle the cheapest cell, stop at the
// destination, otherwise relax its neighbors.
func (r *runner) process() error {
	for {
		u, ok := r.front.pop(r.dist)
		if !ok {
			return nil
		}
		if u == r.dst {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}
}

// relax examines the four neighbors of the settled cell u and improves the
// tentative cost of every in-bounds, non-Wall, still-unsettled one.
func (r *runner) relax(u int) error {
	from := r.g.Coordinate(u)
	for _, d := range gridgraph.Directions() {
		to := from.Step(d)
		if !r.g.InBounds(to) {
			continue
		}
		v := r.g.Index(to)
		cell := r.g.At(v)
		if cell == gridgraph.Wall || r.front.settled(v) {
			continue
		}

		w := r.cost(d, cell)
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: %v→%v (%s onto %s) cost=%v", ErrNegativeCost, from, to, d, cell, w)
		}

		// Strict improvement only: equal-cost alternatives keep the first parent.
		newDist := r.dist[u] + w
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.front.push(v, newDist)
	}

	return nil
}

// path follows parent links from the destination back to the start. A chain
// that does not terminate at the start yields the unreachable sentinel.
func (r *runner) path() PathResult {
	var rev []gridgraph.Coordinate
	at := r.dst
	for at != r.src {
		if at < 0 {
			return Unreachable()
		}
		rev = append(rev, r.g.Coordinate(at))
		at = r.prev[at]
	}
	rev = append(rev, r.g.Coordinate(r.src))

	path := make([]gridgraph.Coordinate, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}

	return PathResult{Path: path, Cost: r.dist[r.dst]}
}

// heapFrontier is the O(E log V) frontier: a lazy-decrease-key min-heap plus
// settled flags.
type heapFrontier struct {
	pq   nodePQ
	done []bool
}

func newHeapFrontier(n int) *heapFrontier {
	f := &heapFrontier{
		pq:   make(nodePQ, 0, n),
		done: make([]bool, n),
	}
	heap.Init(&f.pq)
	return f
}

func (f *heapFrontier) push(idx int, d float64) {
	heap.Push(&f.pq, &nodeItem{idx: idx, dist: d})
}

func (f *heapFrontier) pop(_ []float64) (int, bool) {
	for f.pq.Len() > 0 {
		item := heap.Pop(&f.pq).(*nodeItem)
		// Skip stale entries of already finalized cells.
		if f.done[item.idx] {
			continue
		}
		f.done[item.idx] = true
		return item.idx, true
	}
	return -1, false
}

func (f *heapFrontier) settled(idx int) bool {
	return f.done[idx]
}

// nodeItem represents a cell and its tentative cost from the source.
type nodeItem struct {
	idx  int     // row-major cell index
	dist float64 // cost from source
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, idx) ascending.
// We use the "lazy-decrease-key" approach: an improved cost pushes a new
// entry and the outdated one is ignored when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by cost, then by row-major index for deterministic ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
