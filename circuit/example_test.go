package circuit_test

import (
	"fmt"

	"github.com/quarclab/quarc/circuit"
	"github.com/quarclab/quarc/registers"
	"github.com/quarclab/quarc/scalar"
)

// ExampleCircuit_Substitute binds the free angle of a measured rotation.
func ExampleCircuit_Substitute() {
	var c circuit.Circuit
	c.Append(
		circuit.DefineRegister{Name: "ro", Length: 1, Element: registers.Bit, Output: true},
		circuit.RotateX{Qubit: 0, Theta: scalar.Symbolic("theta")},
		circuit.MeasureQubit{Qubit: 0, Readout: "ro", ReadoutIndex: 0},
	)

	bound, err := c.Substitute(scalar.Bindings{"theta": 1.5})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(bound)
	// Output:
	// DefineRegister(ro, Bit[1], output)
	// RotateX(0, 1.5)
	// MeasureQubit(0 -> ro[0])
}

// ExampleCircuit_Concatenate splices a measurement suffix onto a prepared
// entangler without touching either part.
func ExampleCircuit_Concatenate() {
	prep := circuit.New(
		circuit.Hadamard{Qubit: 0},
		circuit.CNOT{Control: 0, Target: 1},
	)
	measure := circuit.New(
		circuit.PragmaRepeatedMeasurement{Readout: "ro", Repetitions: 1000},
	)

	full := prep.Concatenate(measure)
	fmt.Println(full.Len(), prep.Len(), measure.Len())
	fmt.Println(full.QubitCount())
	// Output:
	// 3 2 1
	// 2
}
