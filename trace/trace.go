// Package trace implements the loop walk over a gridgraph.Grid.
package trace

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/tile"
)

// Trace walks the loop that starts and ends at g's entry tile.
//
// Behavior:
//  1. Probe the entry's neighbors in tile.ProbeOrder; a neighbor qualifies
//     when its tile connects back toward the entry. Exactly two must
//     qualify, otherwise *AmbiguousEntryShapeError. Leave toward the first.
//  2. On every other tile, arrive through the connector facing back along
//     the heading and leave through the tile's other connector. A tile
//     without that connector ends the walk with *MalformedLoopError.
//  3. Mark each cell as it is entered, the entry included when the walk
//     closes, and count one step per move.
//  4. Stop on returning to the entry.
//
// On any error the returned loop is nil.
//
// Returns ErrGridNil, ErrOptionViolation, *AmbiguousEntryShapeError,
// *MalformedLoopError or an OnStep hook error.
func Trace(g *gridgraph.Grid, opts ...Option) (*Loop, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	limit := o.MaxSteps
	if limit == 0 {
		limit = g.Size()
	}

	start := g.Entry()
	dirs := entryConnections(g, start, nil)
	if len(dirs) != 2 {
		return nil, &AmbiguousEntryShapeError{Pos: start, Dirs: dirs}
	}

	w := &walker{
		grid: g,
		opts: o,
		loop: newLoop(g, start, [2]tile.Direction{dirs[0], dirs[1]}),
	}

	if err := w.run(start, dirs[0], limit); err != nil {
		return nil, err
	}

	return w.loop, nil
}

// entryConnections returns, in tile.ProbeOrder, the directions from p whose
// neighbor connects back to p. When onLoop is non-nil the neighbor must also
// be on the loop.
func entryConnections(g *gridgraph.Grid, p gridgraph.Pos, onLoop func(gridgraph.Pos) bool) []tile.Direction {
	var dirs []tile.Direction
	for _, d := range tile.ProbeOrder {
		n, t := g.Neighbor(p, d)
		if onLoop != nil && !onLoop(n) {
			continue
		}
		if t.Connects(d.Opposite()) {
			dirs = append(dirs, d)
		}
	}

	return dirs
}

// walker encapsulates mutable trace state.
type walker struct {
	grid *gridgraph.Grid
	opts Options
	loop *Loop
}

// run moves from start along heading until the walk closes or fails.
func (w *walker) run(start gridgraph.Pos, heading tile.Direction, limit int) error {
	pos := start
	for {
		if w.loop.Steps >= limit {
			return w.malformed(pos.Step(heading), heading, fmt.Sprintf("no return to entry within %d steps", limit))
		}
		next := pos.Step(heading)
		w.loop.Steps++
		if err := w.opts.OnStep(w.loop.Steps, next, w.grid.Tile(next)); err != nil {
			return fmt.Errorf("trace: OnStep error at %v: %w", next, err)
		}

		if next == start {
			w.loop.mark(next)
			return nil
		}
		if w.loop.OnLoop(next) {
			return w.malformed(next, heading, "cell visited twice")
		}
		out, ok := w.grid.Tile(next).Exit(heading)
		if !ok {
			return w.malformed(next, heading, "no connection facing the incoming heading")
		}

		w.loop.mark(next)
		w.loop.Path = append(w.loop.Path, next)
		pos, heading = next, out
	}
}

func (w *walker) malformed(p gridgraph.Pos, heading tile.Direction, reason string) error {
	return &MalformedLoopError{
		Pos:      p,
		Tile:     w.grid.Tile(p),
		Incoming: heading,
		Steps:    w.loop.Steps,
		Reason:   reason,
	}
}

func newLoop(g *gridgraph.Grid, entry gridgraph.Pos, dirs [2]tile.Direction) *Loop {
	members := make([][]bool, g.Rows())
	for y := range members {
		members[y] = make([]bool, g.Cols())
	}

	return &Loop{
		Entry:     entry,
		Path:      []gridgraph.Pos{entry},
		EntryDirs: dirs,
		members:   members,
	}
}

// mark sets p's membership; cells outside the input are ignored.
func (l *Loop) mark(p gridgraph.Pos) {
	if p.Row >= 0 && p.Row < len(l.members) && p.Col >= 0 && p.Col < len(l.members[p.Row]) {
		l.members[p.Row][p.Col] = true
	}
}
