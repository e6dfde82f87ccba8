package classify_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pipeloop/classify"
	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/trace"
)

// BenchmarkClassify measures the parity scan over a 1000×1000 grid whose
// loop runs along the edge, leaving the whole middle enclosed.
// Complexity: O(W×H)
func BenchmarkClassify(b *testing.B) {
	const n = 1000
	var sb strings.Builder
	sb.WriteString("S" + strings.Repeat("-", n-2) + "7\n")
	for y := 1; y < n-1; y++ {
		sb.WriteString("|" + strings.Repeat(".", n-2) + "|\n")
	}
	sb.WriteString("L" + strings.Repeat("-", n-2) + "J\n")

	g, err := gridgraph.ParseString(sb.String())
	if err != nil {
		b.Fatalf("setup ParseString failed: %v", err)
	}
	loop, err := trace.Trace(g)
	if err != nil {
		b.Fatalf("setup Trace failed: %v", err)
	}
	if _, err := trace.ResolveEntry(g, loop); err != nil {
		b.Fatalf("setup ResolveEntry failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got, _ := classify.Count(g, loop); got != (n-2)*(n-2) {
			b.Fatalf("interior = %d", got)
		}
	}
}
