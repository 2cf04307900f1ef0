// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on terrain grids.
//
// Dijkstra computes the minimum-cost path between two cells of a
// gridgraph.Grid, moving in 4-adjacent steps onto non-Wall cells. The cost of
// a step is an edge cost: a function of the direction taken and the type of
// the cell being entered, not a per-node weight.
//
// Complexity:
//
//	– StrategyHeap: O(E log V) with a lazy-decrease-key binary heap.
//	– StrategyScan: O(V²) selecting the minimum unsettled cell by linear scan.
//	  V = non-Wall cells, E ≤ 4V.
//
// Options:
//
//	– Strategy: StrategyHeap (default) or StrategyScan.
//	– CostFunc: edge-cost function, DirectionalCost by default.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the provided grid pointer is nil.
//	– ErrMissingEndpoint if start or destination is absent (off-grid or Wall).
//	– ErrNilCostFunc     if WithCostFunc(nil) was supplied.
//	– ErrNegativeCost    if the cost function yields a negative edge cost.
//	– ErrBrokenPath      if PathCost is given a non-contiguous path.
package dijkstra

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed in.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrMissingEndpoint indicates that the start or destination is not a
	// usable cell of the grid, or that the grid lacks a Start/Destination.
	ErrMissingEndpoint = errors.New("dijkstra: start or destination missing")

	// ErrNilCostFunc indicates that WithCostFunc received nil.
	ErrNilCostFunc = errors.New("dijkstra: cost function is nil")

	// ErrNegativeCost indicates that the cost function produced a negative
	// edge cost, which breaks Dijkstra's correctness precondition.
	ErrNegativeCost = errors.New("dijkstra: negative edge cost encountered")

	// ErrBrokenPath indicates a path with a non-adjacent step or a Wall cell.
	ErrBrokenPath = errors.New("dijkstra: path is not a contiguous walk over passable cells")
)

// Strategy selects how the next unsettled cell is chosen.
//
// StrategyHeap – min-heap keyed by (cost, row-major index).
// StrategyScan – linear scan over the unsettled set in row-major order.
//
// Both settle cells in the same order, so they report identical costs.
type Strategy int

const (
	// StrategyHeap uses container/heap with lazy decrease-key.
	StrategyHeap Strategy = iota

	// StrategyScan selects the minimum-cost unsettled cell by linear scan.
	StrategyScan
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategyScan:
		return "scan"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "heap" or "scan" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "heap", "":
		return StrategyHeap, nil
	case "scan":
		return StrategyScan, nil
	}
	return StrategyHeap, fmt.Errorf("dijkstra: unknown strategy %q", name)
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Strategy – how the next cell to settle is selected.
// CostFunc – edge cost of entering a cell in a given direction.
type Options struct {
	Strategy Strategy     // Heap or Scan
	CostFunc EdgeCostFunc // Edge-cost model
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithStrategy sets the selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithCostFunc replaces the edge-cost model. A nil fn makes ShortestPath
// return ErrNilCostFunc.
func WithCostFunc(fn EdgeCostFunc) Option {
	return func(o *Options) {
		o.CostFunc = fn
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for functional-options overrides.
//
// Defaults:
//   - Strategy: StrategyHeap.
//   - CostFunc: DirectionalCost.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyHeap,
		CostFunc: DirectionalCost,
	}
}
