package render_test

import (
	"fmt"

	"github.com/quarclab/quarc/circuit"
	"github.com/quarclab/quarc/render"
)

// ExampleDraw diagrams a Bell pair preparation.
func ExampleDraw() {
	bell := circuit.New(
		circuit.Hadamard{Qubit: 0},
		circuit.CNOT{Control: 0, Target: 1},
	)
	fmt.Println(render.Draw(bell))
	// Output:
	// q0: ─┤H├─●─
	// q1: ─────⊕─
}
