package trace

import (
	"github.com/katalvlaran/pipeloop/gridgraph"
)

// queueItem pairs a loop cell with its distance from the entry.
type queueItem struct {
	pos   gridgraph.Pos
	depth int
}

// Distances runs a breadth-first search along the loop from the entry,
// following only mutual connections between loop cells. Every loop cell
// receives its shortest distance from the entry in either direction of
// travel; Max is the entry's eccentricity and equals loop.Farthest().
// The entry must be resolved first (ErrEntryUnresolved otherwise).
func Distances(g *gridgraph.Grid, loop *Loop) (*DistanceResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if loop == nil {
		return nil, ErrLoopNil
	}
	if !g.EntryState().Resolved {
		return nil, ErrEntryUnresolved
	}

	n := len(loop.Path)
	res := &DistanceResult{
		Order:    make([]gridgraph.Pos, 0, n),
		Depth:    make(map[gridgraph.Pos]int, n),
		Parent:   make(map[gridgraph.Pos]gridgraph.Pos, n),
		Farthest: loop.Entry,
	}
	queue := make([]queueItem, 0, n)
	res.Depth[loop.Entry] = 0
	queue = append(queue, queueItem{pos: loop.Entry})

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, item.pos)
		if item.depth > res.Max {
			res.Max, res.Farthest = item.depth, item.pos
		}

		for _, d := range g.Shape(item.pos).Connections() {
			nbr := item.pos.Step(d)
			if !loop.OnLoop(nbr) || !g.Shape(nbr).Connects(d.Opposite()) {
				continue
			}
			// first time seen?
			if _, seen := res.Depth[nbr]; !seen {
				res.Depth[nbr] = item.depth + 1
				res.Parent[nbr] = item.pos
				queue = append(queue, queueItem{pos: nbr, depth: item.depth + 1})
			}
		}
	}

	return res, nil
}
