package gridgraph

import (
	"bufio"
	"fmt"
	"strings"
)

// PathGlyph marks intermediate path cells in the overlay text form.
const PathGlyph = '*'

// Parse reads the grid text form: one line per row, cells separated by
// whitespace, alphabet ". X P S D". Blank lines are skipped.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownSymbol or
// ErrDuplicateEndpoint for malformed input.
func Parse(text string) (*Grid, error) {
	var rows [][]CellType
	scanner := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]CellType, 0, len(fields))
		for _, f := range fields {
			runes := []rune(f)
			if len(runes) != 1 {
				return nil, fmt.Errorf("%w: %q on line %d", ErrUnknownSymbol, f, line)
			}
			t, err := ParseSymbol(runes[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			row = append(row, t)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return FromCells(rows)
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// String renders g in the canonical text form, a trailing newline after
// every row.
func (g *Grid) String() string {
	return g.render(nil)
}

// RenderPath renders g with every coordinate of path that is not Start or
// Destination drawn as PathGlyph.
func (g *Grid) RenderPath(path []Coordinate) string {
	marks := make(map[int]rune, len(path))
	for _, c := range path {
		if !g.InBounds(c) {
			continue
		}
		i := g.Index(c)
		if g.cells[i].IsEndpoint() {
			continue
		}
		marks[i] = PathGlyph
	}
	return g.render(marks)
}

// RenderMarker renders g with a single coordinate drawn as glyph, e.g. a
// player token.
func (g *Grid) RenderMarker(c Coordinate, glyph rune) string {
	if !g.InBounds(c) {
		return g.render(nil)
	}
	return g.render(map[int]rune{g.Index(c): glyph})
}

func (g *Grid) render(marks map[int]rune) string {
	var b strings.Builder
	b.Grow(g.rows * (2*g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			i := r*g.cols + c
			if m, ok := marks[i]; ok {
				b.WriteRune(m)
				continue
			}
			b.WriteRune(g.cells[i].Symbol())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
