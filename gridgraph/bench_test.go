package gridgraph_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/tile"
)

// boxGrid builds an n×n text grid holding one rectangular loop along the edge.
func boxGrid(n int) string {
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			switch {
			case y == 0 && x == 0:
				sb.WriteByte('S')
			case y == 0 && x == n-1:
				sb.WriteByte('7')
			case y == n-1 && x == 0:
				sb.WriteByte('L')
			case y == n-1 && x == n-1:
				sb.WriteByte('J')
			case y == 0 || y == n-1:
				sb.WriteByte('-')
			case x == 0 || x == n-1:
				sb.WriteByte('|')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// BenchmarkParse measures parsing a 1000×1000 grid.
// Complexity: O(W×H)
func BenchmarkParse(b *testing.B) {
	in := boxGrid(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.ParseString(in); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkComponents measures flood-filling the ground inside a 1000×1000 box.
// Complexity: O(W×H×4)
func BenchmarkComponents(b *testing.B) {
	g, err := gridgraph.ParseString(boxGrid(1000))
	if err != nil {
		b.Fatalf("setup ParseString failed: %v", err)
	}
	keep := func(p gridgraph.Pos) bool { return g.Tile(p) == tile.Ground }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components(keep)
	}
}
