// Package gridgraph models the terrain grid consumed by the pathfinding
// engine, the level editor and the game session.
//
// What:
//
//   - Grid wraps a rectangular rows×cols matrix of CellType
//     (Open, Wall, SlowZone, Start, Destination).
//   - Enforces at most one Start and at most one Destination at any time.
//   - Parses and renders the grid text form (". X P S D"), including the
//     path overlay where intermediate path cells are drawn as '*'.
//   - Generates seeded random grids with Start at (0,0) and Destination at
//     (rows-1, cols-1).
//
// Why:
//
//   - Level editors: paint/erase requests become validated mutations.
//   - Games: a generator produces grids that a session validates before play.
//
// Complexity:
//
//   - Get, Set, InBounds:        O(1).
//   - FindStart, FindDestination: O(W×H) scan.
//   - Parse, String, GenerateRandom: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrDuplicateEndpoint: a second Start or Destination was placed.
//   - ErrUnknownSymbol: text form contains a glyph outside the alphabet.
//   - ErrUnknownDirection: direction name or key not recognised.
//   - ErrBadProbability: generator probabilities out of range.
//
// Example text form:
//
//	S . . . .
//	X X . X .
//	. P P . .
//	. X . . D
//	. . . X .
package gridgraph
