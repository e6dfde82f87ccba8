package trace

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/tile"
)

// ResolveEntry determines the entry's true shape from its loop-marked
// neighbors and freezes it in g. It must run after Trace and before any
// interior classification.
//
// A neighbor qualifies when it is on the loop and its tile connects back to
// the entry; neighbors are probed in tile.ProbeOrder, the same order Trace
// uses, so the result always agrees with loop.EntryDirs.
// Returns ErrGridNil, ErrLoopNil, *AmbiguousEntryShapeError, or a wrapped
// gridgraph.ErrEntryResolved when the entry was already resolved.
func ResolveEntry(g *gridgraph.Grid, loop *Loop) (tile.Tile, error) {
	if g == nil {
		return tile.Ground, ErrGridNil
	}
	if loop == nil {
		return tile.Ground, ErrLoopNil
	}

	e := g.Entry()
	dirs := entryConnections(g, e, loop.OnLoop)
	if len(dirs) != 2 {
		return tile.Ground, &AmbiguousEntryShapeError{Pos: e, Dirs: dirs}
	}
	shape, ok := tile.FromConnections(dirs[0], dirs[1])
	if !ok {
		return tile.Ground, &AmbiguousEntryShapeError{Pos: e, Dirs: dirs}
	}
	if err := g.ResolveEntry(shape); err != nil {
		return tile.Ground, fmt.Errorf("trace: resolve entry: %w", err)
	}

	return shape, nil
}
