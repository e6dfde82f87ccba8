package classify

import "github.com/katalvlaran/pipeloop/tile"

// CrossingDelta feeds a run of loop tiles through the corner state machine
// from a fresh row and returns the net change to the crossing counter.
func CrossingDelta(run ...tile.Tile) int {
	total := 0
	s := noPendingCorner
	for _, t := range run {
		var d int
		d, s = s.step(t)
		total += d
	}

	return total
}
