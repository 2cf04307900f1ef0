// Package gridgraph defines core types for the terrain grid: cell types,
// coordinates and the four travel directions.
package gridgraph

import (
	"fmt"
	"strings"
)

// CellType is the terrain marker stored in every grid cell.
type CellType uint8

const (
	// Open is walkable floor.
	Open CellType = iota
	// Wall is an obstacle; it is never part of a path.
	Wall
	// SlowZone is walkable terrain with a reduced base cost.
	SlowZone
	// Start is the unique starting cell.
	Start
	// Destination is the unique goal cell.
	Destination
)

// symbols maps every CellType to its glyph in the grid text form.
var symbols = [...]rune{
	Open:        '.',
	Wall:        'X',
	SlowZone:    'P',
	Start:       'S',
	Destination: 'D',
}

// Symbol returns the glyph used by the grid text form.
// Unknown values render as '?'.
func (t CellType) Symbol() rune {
	if int(t) < len(symbols) {
		return symbols[t]
	}
	return '?'
}

// String returns the human-readable name of the cell type.
func (t CellType) String() string {
	switch t {
	case Open:
		return "Open"
	case Wall:
		return "Wall"
	case SlowZone:
		return "SlowZone"
	case Start:
		return "Start"
	case Destination:
		return "Destination"
	default:
		return fmt.Sprintf("CellType(%d)", uint8(t))
	}
}

// IsEndpoint reports whether t is Start or Destination.
func (t CellType) IsEndpoint() bool {
	return t == Start || t == Destination
}

// ParseSymbol converts a glyph of the text form into a CellType.
func ParseSymbol(r rune) (CellType, error) {
	for t, s := range symbols {
		if s == r {
			return CellType(t), nil
		}
	}
	return Open, fmt.Errorf("%w: %q", ErrUnknownSymbol, r)
}

// Coordinate addresses a cell by row and column, both zero-based.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// At is shorthand for Coordinate{Row: row, Col: col}.
func At(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Step returns the neighbor of c one unit in direction d.
func (c Coordinate) Step(d Direction) Coordinate {
	dr, dc := d.Delta()
	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}

// String formats c as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is one of the four axis-aligned unit moves.
type Direction uint8

const (
	North Direction = iota
	South
	West
	East
)

// directions is the fixed neighbor expansion order: up, down, left, right.
var directions = [...]Direction{North, South, West, East}

// Directions returns the four directions in expansion order.
func Directions() []Direction {
	out := make([]Direction, len(directions))
	copy(out, directions[:])
	return out
}

// Delta returns the (row, col) unit vector of d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case West:
		return 0, -1
	case East:
		return 0, 1
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d <= East
}

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case West:
		return "West"
	case East:
		return "East"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection accepts "n", "s", "e", "w" or the full direction names,
// case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north", "up":
		return North, nil
	case "s", "south", "down":
		return South, nil
	case "w", "west", "left":
		return West, nil
	case "e", "east", "right":
		return East, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// ParseKey maps the W/A/S/D movement keys to directions.
func ParseKey(key string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(key)) {
	case "W":
		return North, nil
	case "A":
		return West, nil
	case "S":
		return South, nil
	case "D":
		return East, nil
	}
	return 0, fmt.Errorf("%w: key %q", ErrUnknownDirection, key)
}

// DirectionBetween returns the direction that moves from a to b, if the two
// coordinates are 4-adjacent.
func DirectionBetween(a, b Coordinate) (Direction, bool) {
	for _, d := range directions {
		if a.Step(d) == b {
			return d, true
		}
	}
	return 0, false
}
