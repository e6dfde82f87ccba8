// Package gridgraph provides the padded tile grid that loop tracing and
// interior classification run on.
//
// Cells outside the input report tile.Ground, so a traversal can always look
// one step in any direction without a bounds check.
package gridgraph

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pipeloop/tile"
)

// Parse reads a grid in the text format: one line per row, one character per
// tile. A trailing "\r" on each line and a single trailing empty line are
// ignored. Returns ErrEmptyGrid, ErrNonRectangular, *InvalidTileSymbolError,
// ErrNoEntry or ErrMultipleEntries for malformed input.
// Complexity: O(W×H) time and memory.
func Parse(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: read input: %w", err)
	}

	return ParseString(string(data))
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && strings.TrimSuffix(lines[n-1], "\r") == "" {
		lines = lines[:n-1]
	}
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	return FromRows(lines)
}

// FromRows builds a Grid from pre-split rows.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h := len(rows)
	w := len([]rune(rows[0]))
	g := &Grid{
		rows:   h,
		cols:   w,
		stride: w + 2,
		cells:  make([]tile.Tile, (h+2)*(w+2)),
	}

	entries := 0
	for y, line := range rows {
		runes := []rune(line)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, y, len(runes), w)
		}
		for x, r := range runes {
			t, err := tile.Parse(r)
			if err != nil {
				return nil, &InvalidTileSymbolError{Pos: Pos{Row: y, Col: x}, Rune: r, Err: err}
			}
			if t == tile.Entry {
				entries++
				g.entry = EntryState{Pos: Pos{Row: y, Col: x}, Shape: tile.Entry}
			}
			g.cells[g.index(Pos{Row: y, Col: x})] = t
		}
	}

	switch {
	case entries == 0:
		return nil, ErrNoEntry
	case entries > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleEntries, entries)
	}

	return g, nil
}

// Rows returns the number of input rows (padding excluded).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of input columns (padding excluded).
func (g *Grid) Cols() int { return g.cols }

// Size returns Rows×Cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether p lies within the input (padding excluded).
// Complexity: O(1).
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Tile returns the parsed tile at p. The entry cell reports tile.Entry
// regardless of resolution; anything outside the input reports tile.Ground.
func (g *Grid) Tile(p Pos) tile.Tile {
	if !g.inPadded(p) {
		return tile.Ground
	}

	return g.cells[g.index(p)]
}

// Shape returns the effective shape at p: the resolved variant for the entry
// once resolution has happened, the parsed tile everywhere else.
func (g *Grid) Shape(p Pos) tile.Tile {
	if p == g.entry.Pos && g.entry.Resolved {
		return g.entry.Shape
	}

	return g.Tile(p)
}

// Neighbor returns the position one step from p in direction d and the parsed
// tile found there.
func (g *Grid) Neighbor(p Pos, d tile.Direction) (Pos, tile.Tile) {
	n := p.Step(d)
	return n, g.Tile(n)
}

// Entry returns the position of the entry tile.
func (g *Grid) Entry() Pos { return g.entry.Pos }

// EntryState returns the current entry state.
func (g *Grid) EntryState() EntryState { return g.entry }

// ResolveEntry freezes the entry to shape t. It succeeds once; later calls
// return ErrEntryResolved. t must be one of the six fixed-shape tiles.
func (g *Grid) ResolveEntry(t tile.Tile) error {
	if g.entry.Resolved {
		return ErrEntryResolved
	}
	if len(t.Connections()) != 2 {
		return fmt.Errorf("%w: got %s", ErrEntryShape, t)
	}
	g.entry.Resolved = true
	g.entry.Shape = t

	return nil
}

// String renders the grid back in the text format, padding excluded.
// The entry is always written as `S`.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			sb.WriteRune(g.Tile(Pos{Row: y, Col: x}).Symbol())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps p onto the padded row-major slice.
// Complexity: O(1).
func (g *Grid) index(p Pos) int {
	return (p.Row+1)*g.stride + p.Col + 1
}

// position converts a padded index back to a Pos.
// Complexity: O(1).
func (g *Grid) position(idx int) Pos {
	return Pos{Row: idx/g.stride - 1, Col: idx%g.stride - 1}
}

// inPadded reports whether p lies within the padded grid.
func (g *Grid) inPadded(p Pos) bool {
	return p.Row >= -1 && p.Row <= g.rows && p.Col >= -1 && p.Col <= g.cols
}
