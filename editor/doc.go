// Package editor implements a level editor over a gridgraph.Grid: select a
// tool, paint or erase cells, clear the grid and solve it.
//
// The editor enforces at most one Start and one Destination. A rejected
// placement leaves the grid unchanged and updates Status() with the reason,
// mirroring a one-line log box:
//
//	e, _ := editor.NewBlank(5, 5)
//	e.Paint(gridgraph.At(0, 0))        // default tool is Start
//	e.Select(editor.Brush(gridgraph.Destination))
//	e.Paint(gridgraph.At(4, 4))
//	res, err := e.Solve()              // "Path found! Cost: 8"
//
// Errors:
//
//   - gridgraph.ErrDuplicateEndpoint when a second endpoint is painted.
//   - gridgraph.ErrOutOfBounds for coordinates outside the grid.
//   - dijkstra.ErrMissingEndpoint when Solve runs without both endpoints.
//   - ErrUnknownTool from ParseTool.
package editor
