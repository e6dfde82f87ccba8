package trace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/tile"
)

var (
	// ErrGridNil is returned when a nil *gridgraph.Grid is passed.
	ErrGridNil = errors.New("trace: grid is nil")

	// ErrLoopNil is returned when a nil *Loop is passed.
	ErrLoopNil = errors.New("trace: loop is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("trace: invalid option supplied")

	// ErrMalformedLoop indicates the walk from the entry is not a closed loop.
	ErrMalformedLoop = errors.New("trace: malformed loop")

	// ErrAmbiguousEntry indicates the entry does not have exactly two connections.
	ErrAmbiguousEntry = errors.New("trace: ambiguous entry shape")

	// ErrEntryUnresolved indicates the entry is still a wildcard.
	ErrEntryUnresolved = errors.New("trace: entry shape not resolved")
)

// MalformedLoopError reports where a traversal could not continue.
type MalformedLoopError struct {
	Pos      gridgraph.Pos  // cell where the walk failed
	Tile     tile.Tile      // tile found there
	Incoming tile.Direction // heading the walk arrived with
	Steps    int            // steps taken when the failure was detected
	Reason   string
}

func (e *MalformedLoopError) Error() string {
	return fmt.Sprintf("trace: malformed loop at %v (%s, heading %s) after %d steps: %s",
		e.Pos, e.Tile, e.Incoming, e.Steps, e.Reason)
}

// Unwrap exposes ErrMalformedLoop.
func (e *MalformedLoopError) Unwrap() error { return ErrMalformedLoop }

// AmbiguousEntryShapeError reports the directions that qualified as entry
// connections when the count was not exactly two.
type AmbiguousEntryShapeError struct {
	Pos  gridgraph.Pos
	Dirs []tile.Direction
}

func (e *AmbiguousEntryShapeError) Error() string {
	return fmt.Sprintf("trace: ambiguous entry shape at %v: %d connecting neighbors %v, want 2",
		e.Pos, len(e.Dirs), e.Dirs)
}

// Unwrap exposes ErrAmbiguousEntry.
func (e *AmbiguousEntryShapeError) Unwrap() error { return ErrAmbiguousEntry }
