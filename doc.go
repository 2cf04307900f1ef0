// Package gridpath is a weighted-grid shortest-path engine whose step cost
// depends on the direction of travel, plus the editor and game built on it.
//
// 🚀 What is in the box?
//
//	• Grid model: rectangular grids of Open, Wall, SlowZone, Start and
//	  Destination cells with at most one Start and one Destination
//	• Shortest paths: Dijkstra over 4-neighbor moves with a pluggable edge
//	  cost (heap or linear-scan frontier, identical results)
//	• Level editor: brush-based painting, erase, clear, solve and repair
//	• Game session: random solvable grids, a move budget and a report
//	  comparing the player's moves with the optimal route
//	• Server: HTTP and WebSocket front end for sessions and the editor
//
// Cost model (default):
//
//	North, West → 0.5
//	South, East → base cost of the entered cell
//	              Open 1 · SlowZone 0.5 · Start 0 · Destination 1
//
// Layout:
//
//	gridgraph/ — cells, coordinates, text format, regions, random grids
//	dijkstra/  — shortest path, cost functions, path utilities
//	editor/    — interactive grid editing
//	game/      — session lifecycle and grid sources
//	config/    — HCL configuration with env overrides
//	server/    — HTTP routes, WebSocket protocols, middleware
//	cmd/       — gridserver and gridsolve binaries
//
// Quick ASCII example:
//
//	S . .        S * *
//	. X .   →    . X *
//	. . D        . . D     cost 4
package gridpath
