// Package dijkstra provides Dijkstra's shortest-path algorithm on terrain
// grids whose edge costs depend on the direction of travel.
//
// Overview:
//
//   - ShortestPath computes the minimum-cost 4-adjacent walk between two
//     non-Wall cells of a gridgraph.Grid.
//   - The cost of a step is EdgeCostFunc(direction, destination cell type).
//     Under the default DirectionalCost model North and West steps always
//     cost 0.5; South and East steps cost the destination's base cost
//     (Open 1, SlowZone 0.5, Start 0, Destination 1, anything else 1).
//   - Costs are therefore asymmetric: on "S D" the optimum is 1, on the
//     mirrored "D S" it is 0.5.
//
// When to use:
//
//   - Solving a level in an editor ("is this grid playable, and how?").
//   - Validating generated grids before a game session exposes them.
//   - Reporting the optimal route after a session ends.
//
// Key features:
//
//   - Functional options: WithStrategy(StrategyHeap|StrategyScan),
//     WithCostFunc(fn).
//   - Deterministic tie-break by row-major index; both strategies settle
//     cells in the same order and return the same path.
//   - Early exit as soon as the destination is settled.
//   - Unreachable destinations are a value (Unreachable(): empty path,
//     +Inf cost), never an error.
//
// Performance and complexity:
//
//   - StrategyHeap: O(E log V) time, O(V + E) space (lazy decrease-key).
//   - StrategyScan: O(V²) time, O(V) space. Fine for tens-by-tens grids.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:
//     Returned if you pass a nil *gridgraph.Grid.
//   - ErrMissingEndpoint:
//     Returned if start or destination is off-grid or a Wall, or if
//     SolveGrid finds no Start/Destination cell. No computation is attempted.
//   - ErrNilCostFunc:
//     Returned if WithCostFunc(nil) was supplied.
//   - ErrNegativeCost:
//     Returned if the cost function yields a negative (or NaN) edge cost.
//   - ErrBrokenPath:
//     Returned by PathCost for an empty or non-contiguous path.
//
// API reference:
//
//	func ShortestPath(g *gridgraph.Grid, start, dest gridgraph.Coordinate, opts ...Option) (PathResult, error)
//	func SolveGrid(g *gridgraph.Grid, opts ...Option) (PathResult, error)
//	func PathCost(g *gridgraph.Grid, path []gridgraph.Coordinate, fn EdgeCostFunc) (float64, error)
//
// Thread safety:
//
//   - ShortestPath never mutates the grid, but it is not safe to mutate the
//     grid while a query is running. Synchronize externally if needed.
package dijkstra
