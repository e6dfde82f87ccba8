package gridgraph

import "github.com/katalvlaran/pipeloop/tile"

// Components finds all 4-connected regions of input cells for which keep
// returns true. The Ground padding is always traversable, so every region
// that reaches the edge of the input is merged with it and reported Open.
// The open region, if any, comes first; the rest follow in row-major order of
// their first cell. Cells within a region are in BFS order and padding cells
// never appear in Cells.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components(keep func(p Pos) bool) []Region {
	seen := make([]bool, len(g.cells))
	pass := func(p Pos) bool {
		if !g.inPadded(p) {
			return false
		}
		return !g.InBounds(p) || keep(p)
	}

	var regions []Region
	for i0 := range g.cells {
		p0 := g.position(i0)
		if seen[i0] || !pass(p0) {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		var reg Region

		for qi := 0; qi < len(queue); qi++ {
			u := g.position(queue[qi])
			if g.InBounds(u) {
				reg.Cells = append(reg.Cells, u)
			} else {
				reg.Open = true
			}
			for _, d := range tile.ProbeOrder {
				v := u.Step(d)
				if !pass(v) {
					continue
				}
				vi := g.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		if len(reg.Cells) > 0 {
			regions = append(regions, reg)
		}
	}

	return regions
}
