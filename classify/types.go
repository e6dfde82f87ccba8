package classify

import (
	"errors"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/tile"
)

var (
	// ErrGridNil is returned when a nil grid is passed to Classify.
	ErrGridNil = errors.New("classify: grid is nil")

	// ErrMembership is returned for a nil membership, or one whose matrix
	// does not have the grid's dimensions.
	ErrMembership = errors.New("classify: membership does not match grid")

	// ErrEntryUnresolved is returned when the entry shape is still unknown.
	ErrEntryUnresolved = errors.New("classify: entry shape not resolved")
)

// Class labels a single cell.
type Class uint8

const (
	Exterior Class = iota
	Interior
	Loop
)

// String implements fmt.Stringer.
func (c Class) String() string {
	switch c {
	case Interior:
		return "interior"
	case Loop:
		return "loop"
	default:
		return "exterior"
	}
}

// Membership reports whether a cell lies on the loop. *trace.Loop satisfies it.
type Membership interface {
	OnLoop(p gridgraph.Pos) bool
}

// Result is the outcome of Classify.
// Interior + Exterior + Loop always equals the number of input cells.
type Result struct {
	Interior int
	Exterior int
	Loop     int

	// Cells holds the label of every input cell, indexed [row][col].
	Cells [][]Class
}

// At returns the label at (row, col).
func (r *Result) At(row, col int) Class {
	return r.Cells[row][col]
}

// cornerState remembers an opening bend while scanning a row.
// The zero value is noPendingCorner.
type cornerState struct {
	pending tile.Tile // tile.BendNE, tile.BendSE, or tile.Ground for none
}

// noPendingCorner is the initial state of every row.
var noPendingCorner = cornerState{pending: tile.Ground}

// pendingCorner opens a bend run with kind.
func pendingCorner(kind tile.Tile) cornerState {
	return cornerState{pending: kind}
}

// step feeds one loop tile into the state machine. It returns the change to
// the crossing counter and the next state.
//
//	any non-Horizontal tile:        +1
//	BendSW after pending BendNE:    -1 more (one crossing, not two)
//	BendNW after pending BendSE:    -1 more
//	BendNE / BendSE:                become the pending corner
//	Horizontal:                     no change, state kept
//	anything else:                  state cleared
func (s cornerState) step(t tile.Tile) (delta int, next cornerState) {
	switch t {
	case tile.Horizontal:
		return 0, s
	case tile.BendNE, tile.BendSE:
		return 1, pendingCorner(t)
	case tile.BendSW:
		if s.pending == tile.BendNE {
			return 0, noPendingCorner
		}
		return 1, noPendingCorner
	case tile.BendNW:
		if s.pending == tile.BendSE {
			return 0, noPendingCorner
		}
		return 1, noPendingCorner
	default:
		return 1, noPendingCorner
	}
}
