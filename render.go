package pipeloop

import (
	"bufio"
	"errors"
	"io"

	"github.com/katalvlaran/pipeloop/classify"
	"github.com/katalvlaran/pipeloop/gridgraph"
)

// Markers used by Render for non-loop cells.
const (
	MarkInterior     = 'I'
	MarkOpenExterior = 'O' // reachable from outside the grid
	MarkSealed       = 'o' // exterior, but boxed in between pipes
)

// ErrReportNil is returned by Render for a nil or incomplete report.
var ErrReportNil = errors.New("pipeloop: report is nil")

// Render writes rep's grid with box-drawing glyphs for the loop (the entry
// drawn in its resolved shape) and a marker for every other cell.
func Render(w io.Writer, rep *Report) error {
	if rep == nil || rep.Grid == nil || rep.Loop == nil || rep.Classes == nil {
		return ErrReportNil
	}
	g := rep.Grid

	open := make(map[gridgraph.Pos]bool)
	for _, r := range g.Components(func(p gridgraph.Pos) bool { return !rep.Loop.OnLoop(p) }) {
		if !r.Open {
			continue
		}
		for _, p := range r.Cells {
			open[p] = true
		}
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			p := gridgraph.Pos{Row: y, Col: x}
			var r rune
			switch rep.Classes.At(y, x) {
			case classify.Loop:
				r = g.Shape(p).Glyph()
			case classify.Interior:
				r = MarkInterior
			default:
				r = MarkSealed
				if open[p] {
					r = MarkOpenExterior
				}
			}
			if _, err := bw.WriteRune(r); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
