package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/tile"
)

// Pos addresses a cell of the input grid; (0,0) is the top-left character.
// Positions one step outside the input address the Ground padding.
type Pos struct {
	Row, Col int
}

// Step returns the position one cell away in direction d.
func (p Pos) Step(d tile.Direction) Pos {
	dr, dc := d.Delta()
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// String implements fmt.Stringer.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// EntryState is the two-phase shape of the entry tile.
// While Resolved is false the entry is a wildcard connecting every direction;
// once resolved, Shape holds its true fixed-shape variant.
type EntryState struct {
	Pos      Pos
	Resolved bool
	Shape    tile.Tile
}

// Grid is a rectangular tile grid surrounded by a one-cell Ground border.
// Tile shapes are immutable once parsed; only the entry's EntryState changes,
// and only once.
type Grid struct {
	rows, cols int
	stride     int         // cols + 2
	cells      []tile.Tile // padded, row-major
	entry      EntryState
}

// Region is a 4-connected group of cells found by Components.
// Open reports that the region reaches the padding border, i.e. the outside.
type Region struct {
	Cells []Pos
	Open  bool
}
