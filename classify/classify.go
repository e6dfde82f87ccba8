package classify

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/gridgraph"
)

// Classify labels every cell of g. members must report the traced loop and
// g's entry must already be resolved, so the entry contributes its true
// shape to the scan. Classify does not modify g or members and returns the
// same result when called again.
//
// Returns ErrGridNil, ErrMembership (nil members, or a Members matrix of
// the wrong size) or ErrEntryUnresolved.
func Classify(g *gridgraph.Grid, members Membership) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if members == nil {
		return nil, ErrMembership
	}
	if m, ok := members.(matrix); ok {
		if err := checkSize(g, m.Members()); err != nil {
			return nil, err
		}
	}
	if !g.EntryState().Resolved {
		return nil, ErrEntryUnresolved
	}

	res := &Result{Cells: make([][]Class, g.Rows())}
	for y := 0; y < g.Rows(); y++ {
		res.Cells[y] = scanRow(g, members, y, res)
	}

	return res, nil
}

// matrix is implemented by memberships that expose their cell flags, such
// as *trace.Loop.
type matrix interface {
	Members() [][]bool
}

// checkSize verifies cells has exactly g's rows and columns.
func checkSize(g *gridgraph.Grid, cells [][]bool) error {
	if len(cells) != g.Rows() {
		return fmt.Errorf("%w: %d rows, grid has %d", ErrMembership, len(cells), g.Rows())
	}
	for y, row := range cells {
		if len(row) != g.Cols() {
			return fmt.Errorf("%w: row %d has %d columns, grid has %d", ErrMembership, y, len(row), g.Cols())
		}
	}

	return nil
}

// scanRow runs the parity scan over row y and tallies into res.
func scanRow(g *gridgraph.Grid, members Membership, y int, res *Result) []Class {
	row := make([]Class, g.Cols())
	crossings := 0
	corner := noPendingCorner

	for x := 0; x < g.Cols(); x++ {
		p := gridgraph.Pos{Row: y, Col: x}
		if members.OnLoop(p) {
			var delta int
			delta, corner = corner.step(g.Shape(p))
			crossings += delta
			row[x] = Loop
			res.Loop++
			continue
		}
		if crossings%2 == 1 {
			row[x] = Interior
			res.Interior++
		} else {
			row[x] = Exterior
			res.Exterior++
		}
	}

	return row
}

// Count is Classify returning only the interior tile count.
func Count(g *gridgraph.Grid, members Membership) (int, error) {
	res, err := Classify(g, members)
	if err != nil {
		return 0, err
	}

	return res.Interior, nil
}
