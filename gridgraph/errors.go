package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrDuplicateEndpoint indicates a second Start or Destination placement.
	ErrDuplicateEndpoint = errors.New("gridgraph: endpoint already placed")
	// ErrUnknownSymbol indicates a glyph outside the ". X P S D" alphabet.
	ErrUnknownSymbol = errors.New("gridgraph: unknown cell symbol")
	// ErrUnknownDirection indicates an unparsable direction name or key.
	ErrUnknownDirection = errors.New("gridgraph: unknown direction")
	// ErrBadProbability indicates generator probabilities outside [0,1] or summing above 1.
	ErrBadProbability = errors.New("gridgraph: probabilities must lie in [0,1] and sum to at most 1")
)
