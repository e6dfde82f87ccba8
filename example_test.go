package pipeloop_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/internal/samples"
)

// ExampleSolveString reports both answers for the reference grid.
func ExampleSolveString() {
	rep, err := pipeloop.SolveString(samples.Complex)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("farthest:", rep.Farthest)
	fmt.Println("interior:", rep.Interior)

	// Output:
	// farthest: 8
	// interior: 1
}

// ExampleRender draws the smallest loop with a pocket in the middle.
func ExampleRender() {
	rep, _ := pipeloop.SolveString("S-7\n|.|\nL-J\n")
	_ = pipeloop.Render(os.Stdout, rep)

	// Output:
	// ┌─┐
	// │I│
	// └─┘
}
