// Package gridgraph holds the authoritative terrain state of a rectangular
// grid. It supports:
//
//   - Bounds-checked reads and writes of individual cells
//   - The single-Start / single-Destination placement invariant
//   - Conversion to and from the grid text form
//   - Seeded random generation of playable grids
//
// Cells are stored row-major; Index and Coordinate convert between the two
// addressing schemes.
package gridgraph

// Grid is a rows×cols matrix of CellType. Dimensions are fixed at
// construction. At most one Start and at most one Destination exist at any
// time; startPlaced and destPlaced mirror their presence.
type Grid struct {
	rows, cols  int
	cells       []CellType
	startPlaced bool
	destPlaced  bool
}

// NewGrid returns a rows×cols grid with every cell Open.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(rows×cols).
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]CellType, rows*cols),
	}, nil
}

// FromCells builds a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input. Returns ErrEmptyGrid if there are no rows or no
// columns, ErrNonRectangular if any row length differs, and
// ErrDuplicateEndpoint if more than one Start or Destination is present.
// Complexity: O(rows×cols).
func FromCells(values [][]CellType) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, _ := NewGrid(h, w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if err := g.Set(Coordinate{Row: r, Col: c}, values[r][c]); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Passable reports whether c is in bounds and not a Wall.
func (g *Grid) Passable(c Coordinate) bool {
	return g.InBounds(c) && g.cells[g.Index(c)] != Wall
}

// Index maps c to its row-major index: Row*cols + Col.
// The result is meaningless for out-of-bounds coordinates.
// Complexity: O(1).
func (g *Grid) Index(c Coordinate) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / g.cols, Col: idx % g.cols}
}

// Get returns the cell type at c, or ErrOutOfBounds.
func (g *Grid) Get(c Coordinate) (CellType, error) {
	if !g.InBounds(c) {
		return Open, ErrOutOfBounds
	}
	return g.cells[g.Index(c)], nil
}

// At returns the cell type at a row-major index without bounds checks.
func (g *Grid) At(idx int) CellType {
	return g.cells[idx]
}

// Set overwrites the cell at c with t.
//
// Placing a Start (or Destination) while one already exists elsewhere is
// rejected with ErrDuplicateEndpoint and leaves the grid unchanged; the old
// endpoint must be erased first. Overwriting an endpoint with anything else
// clears the corresponding placed flag.
func (g *Grid) Set(c Coordinate, t CellType) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	i := g.Index(c)
	prev := g.cells[i]
	if prev == t {
		return nil
	}
	switch {
	case t == Start && g.startPlaced:
		return ErrDuplicateEndpoint
	case t == Destination && g.destPlaced:
		return ErrDuplicateEndpoint
	}

	switch prev {
	case Start:
		g.startPlaced = false
	case Destination:
		g.destPlaced = false
	}
	switch t {
	case Start:
		g.startPlaced = true
	case Destination:
		g.destPlaced = true
	}
	g.cells[i] = t

	return nil
}

// ClearAll resets every cell to Open and clears both placed flags.
func (g *Grid) ClearAll() {
	for i := range g.cells {
		g.cells[i] = Open
	}
	g.startPlaced = false
	g.destPlaced = false
}

// StartPlaced reports whether a Start cell exists.
func (g *Grid) StartPlaced() bool { return g.startPlaced }

// DestinationPlaced reports whether a Destination cell exists.
func (g *Grid) DestinationPlaced() bool { return g.destPlaced }

// FindStart scans the grid for the Start cell.
func (g *Grid) FindStart() (Coordinate, bool) {
	return g.find(Start)
}

// FindDestination scans the grid for the Destination cell.
func (g *Grid) FindDestination() (Coordinate, bool) {
	return g.find(Destination)
}

func (g *Grid) find(t CellType) (Coordinate, bool) {
	for i, cell := range g.cells {
		if cell == t {
			return g.Coordinate(i), true
		}
	}
	return Coordinate{}, false
}

// Clone returns a deep copy of g, or nil for a nil grid.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	cells := make([]CellType, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		rows:        g.rows,
		cols:        g.cols,
		cells:       cells,
		startPlaced: g.startPlaced,
		destPlaced:  g.destPlaced,
	}
}

// Cells returns a deep copy of the grid as a 2D slice, row by row.
func (g *Grid) Cells() [][]CellType {
	out := make([][]CellType, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]CellType, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}
