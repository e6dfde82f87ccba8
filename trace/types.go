package trace

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/tile"
)

// Option configures optional behavior of Trace.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunable parameters of Trace.
type Options struct {
	// OnStep, if non-nil, is invoked after every move with the step count,
	// the cell just entered and its parsed tile. Returning an error aborts
	// the trace with that error.
	OnStep func(step int, p gridgraph.Pos, t tile.Tile) error

	// MaxSteps bounds the walk. Zero means the grid's cell count, which no
	// simple loop can exceed.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no hook and the default step bound.
func DefaultOptions() Options {
	return Options{
		OnStep:   func(int, gridgraph.Pos, tile.Tile) error { return nil },
		MaxSteps: 0,
	}
}

// WithOnStep installs fn as the per-step hook.
func WithOnStep(fn func(step int, p gridgraph.Pos, t tile.Tile) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithMaxSteps bounds the number of moves.
//
//	n > 0:  abort with ErrMalformedLoop after n moves without closing
//	n == 0: bound by the grid's cell count
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Loop is the result of Trace.
type Loop struct {
	// Entry is the position the walk started and ended at.
	Entry gridgraph.Pos

	// Steps is the number of moves needed to return to Entry: the perimeter.
	Steps int

	// Path lists loop cells in walk order, starting with Entry.
	Path []gridgraph.Pos

	// EntryDirs are the two directions from Entry whose neighbors connect
	// back to it, in tile.ProbeOrder. The walk leaves along EntryDirs[0].
	EntryDirs [2]tile.Direction

	members [][]bool
}

// OnLoop reports whether p was visited by the trace.
func (l *Loop) OnLoop(p gridgraph.Pos) bool {
	if p.Row < 0 || p.Row >= len(l.members) || p.Col < 0 || p.Col >= len(l.members[p.Row]) {
		return false
	}
	return l.members[p.Row][p.Col]
}

// Members returns a copy of the membership matrix, indexed [row][col].
func (l *Loop) Members() [][]bool {
	out := make([][]bool, len(l.members))
	for y, row := range l.members {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// Farthest returns the greatest distance along the loop from Entry: half
// the perimeter of a simple cycle.
func (l *Loop) Farthest() int {
	return l.Steps / 2
}

// DistanceResult holds the outcome of Distances:
//   - Order: loop cells in visit sequence.
//   - Depth: distance along the loop from Entry.
//   - Parent: predecessor on a shortest way back to Entry.
//   - Max / Farthest: the eccentricity of Entry and a cell attaining it.
type DistanceResult struct {
	Order    []gridgraph.Pos
	Depth    map[gridgraph.Pos]int
	Parent   map[gridgraph.Pos]gridgraph.Pos
	Max      int
	Farthest gridgraph.Pos
}

// PathTo reconstructs the shortest way along the loop from Entry to dest.
// Returns an error if dest is not on the loop.
func (r *DistanceResult) PathTo(dest gridgraph.Pos) ([]gridgraph.Pos, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("trace: %v is not on the loop", dest)
	}
	// build reversed path
	path := []gridgraph.Pos{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get Entry → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
