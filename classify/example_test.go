package classify_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/classify"
	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/internal/samples"
	"github.com/katalvlaran/pipeloop/trace"
)

// ExampleClassify counts the tiles enclosed by a loop whose two halves are
// joined only through a gap between pipes.
func ExampleClassify() {
	g, _ := gridgraph.ParseString(samples.Squeeze)
	loop, _ := trace.Trace(g)
	if _, err := trace.ResolveEntry(g, loop); err != nil {
		fmt.Println("error:", err)
		return
	}

	res, _ := classify.Classify(g, loop)
	fmt.Println("interior:", res.Interior)
	fmt.Println("loop:", res.Loop)
	fmt.Println("exterior:", res.Exterior)

	// Output:
	// interior: 4
	// loop: 44
	// exterior: 42
}
