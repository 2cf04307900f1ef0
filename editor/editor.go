package editor

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Log receives one Debug entry per editor mutation.
var Log = logrus.New()

// ErrUnknownTool indicates an unparsable tool name.
var ErrUnknownTool = errors.New("editor: unknown tool")

// Status lines reported after each editor action.
const (
	StatusStartPlaced       = "Start placed."
	StatusStartDuplicate    = "Start already placed!"
	StatusDestPlaced        = "Destination placed."
	StatusDestDuplicate     = "Destination already placed!"
	StatusCleared           = "Grid cleared."
	StatusErased            = "Cell erased."
	StatusNoPath            = "No path found."
	StatusEndpointsMissing  = "Start and Destination not set!"
	StatusOutOfBounds       = "Out of bounds!"
	statusPathFoundTemplate = "Path found! Cost: %g"
	statusRepairedTemplate  = "Removed %d walls."
)

// Tool is the current brush: either a cell type or the eraser.
type Tool struct {
	cell  gridgraph.CellType
	erase bool
}

// Eraser resets painted cells to Open.
var Eraser = Tool{erase: true}

// Brush returns a tool that paints cells of type t.
func Brush(t gridgraph.CellType) Tool {
	return Tool{cell: t}
}

// ParseTool accepts a cell glyph (". X P S D") or "erase".
func ParseTool(name string) (Tool, error) {
	if name == "erase" || name == "eraser" {
		return Eraser, nil
	}
	runes := []rune(name)
	if len(runes) != 1 {
		return Tool{}, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	t, err := gridgraph.ParseSymbol(runes[0])
	if err != nil {
		return Tool{}, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	return Brush(t), nil
}

// IsEraser reports whether the tool erases.
func (t Tool) IsEraser() bool { return t.erase }

// Cell returns the painted cell type; Open for the eraser.
func (t Tool) Cell() gridgraph.CellType {
	if t.erase {
		return gridgraph.Open
	}
	return t.cell
}

func (t Tool) String() string {
	if t.erase {
		return "Eraser"
	}
	return t.cell.String()
}

// Editor mutates a single grid under the one-Start/one-Destination rule and
// solves it on demand. It is not safe for concurrent use.
type Editor struct {
	grid     *gridgraph.Grid
	tool     Tool
	status   string
	pathOpts []dijkstra.Option
	log      logrus.FieldLogger
}

// Option configures an Editor.
type Option func(*Editor)

// WithPathOptions forwards options to every Solve call.
func WithPathOptions(opts ...dijkstra.Option) Option {
	return func(e *Editor) {
		e.pathOpts = append(e.pathOpts, opts...)
	}
}

// WithLogger sends the editor's log entries to l instead of Log.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Editor) {
		e.log = l
	}
}

// New wraps an existing grid. The editor owns g from here on.
func New(g *gridgraph.Grid, opts ...Option) *Editor {
	e := &Editor{
		grid: g,
		tool: Brush(gridgraph.Start),
		log:  Log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewBlank creates an editor over an all-Open rows×cols grid.
func NewBlank(rows, cols int, opts ...Option) (*Editor, error) {
	g, err := gridgraph.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	return New(g, opts...), nil
}

// Grid returns the live grid.
func (e *Editor) Grid() *gridgraph.Grid { return e.grid }

// Status returns the last status line.
func (e *Editor) Status() string { return e.status }

// Select switches the current tool.
func (e *Editor) Select(t Tool) {
	e.tool = t
	e.log.WithFields(logrus.Fields{
		"tool": t.String(),
	}).Debug("select tool")
}

// Selection returns the current tool.
func (e *Editor) Selection() Tool { return e.tool }

// Paint applies the current tool at c. A second Start or Destination is
// rejected with gridgraph.ErrDuplicateEndpoint and the grid is unchanged.
func (e *Editor) Paint(c gridgraph.Coordinate) error {
	if e.tool.erase {
		return e.Erase(c)
	}
	if !e.grid.InBounds(c) {
		e.status = StatusOutOfBounds
		return gridgraph.ErrOutOfBounds
	}

	err := e.grid.Set(c, e.tool.cell)
	switch e.tool.cell {
	case gridgraph.Start:
		e.status = StatusStartPlaced
		if errors.Is(err, gridgraph.ErrDuplicateEndpoint) {
			e.status = StatusStartDuplicate
		}
	case gridgraph.Destination:
		e.status = StatusDestPlaced
		if errors.Is(err, gridgraph.ErrDuplicateEndpoint) {
			e.status = StatusDestDuplicate
		}
	default:
		e.status = fmt.Sprintf("%s placed.", e.tool.cell)
	}

	e.log.WithFields(logrus.Fields{
		"cell":  c.String(),
		"tool":  e.tool.String(),
		"error": err,
	}).Debug("paint")

	return err
}

// Erase resets the cell at c to Open, releasing an endpoint held there.
func (e *Editor) Erase(c gridgraph.Coordinate) error {
	if err := e.grid.Set(c, gridgraph.Open); err != nil {
		e.status = StatusOutOfBounds
		return err
	}
	e.status = StatusErased

	e.log.WithFields(logrus.Fields{
		"cell": c.String(),
	}).Debug("erase")

	return nil
}

// Clear resets every cell to Open.
func (e *Editor) Clear() {
	e.grid.ClearAll()
	e.status = StatusCleared
	e.log.Debug("clear")
}

// Solve computes the shortest Start→Destination path of the current grid.
// Every call recomputes from scratch. Returns dijkstra.ErrMissingEndpoint
// when either endpoint has not been placed.
func (e *Editor) Solve() (dijkstra.PathResult, error) {
	if !e.grid.StartPlaced() || !e.grid.DestinationPlaced() {
		e.status = StatusEndpointsMissing
		return dijkstra.Unreachable(), fmt.Errorf("%w: place both endpoints first", dijkstra.ErrMissingEndpoint)
	}

	res, err := dijkstra.SolveGrid(e.grid, e.pathOpts...)
	if err != nil {
		e.status = err.Error()
		return res, err
	}
	if res.Reachable() {
		e.status = fmt.Sprintf(statusPathFoundTemplate, res.Cost)
	} else {
		e.status = StatusNoPath
	}

	e.log.WithFields(logrus.Fields{
		"cost":   res.Cost,
		"length": res.Len(),
	}).Debug("solve")

	return res, nil
}

// Repair opens the fewest Wall cells needed to connect Start and
// Destination and returns how many were opened.
func (e *Editor) Repair() (int, error) {
	start, okStart := e.grid.FindStart()
	dest, okDest := e.grid.FindDestination()
	if !okStart || !okDest {
		e.status = StatusEndpointsMissing
		return 0, fmt.Errorf("%w: place both endpoints first", dijkstra.ErrMissingEndpoint)
	}

	_, walls, err := e.grid.WallBreach(start, dest)
	if err != nil {
		return 0, err
	}
	for _, c := range walls {
		if err := e.grid.Set(c, gridgraph.Open); err != nil {
			return 0, err
		}
	}
	e.status = fmt.Sprintf(statusRepairedTemplate, len(walls))

	e.log.WithFields(logrus.Fields{
		"opened": len(walls),
	}).Debug("repair")

	return len(walls), nil
}

// Regions returns the number of separate passable areas.
func (e *Editor) Regions() int {
	return len(e.grid.Regions())
}
