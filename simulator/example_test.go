package simulator_test

import (
	"context"
	"fmt"

	"github.com/quarclab/quarc/circuit"
	"github.com/quarclab/quarc/measurement"
	"github.com/quarclab/quarc/registers"
	"github.com/quarclab/quarc/simulator"
)

// ExampleSimulator prepares a Bell pair, samples it 100 times, and
// estimates the two-qubit parity, which is +1 on every shot regardless
// of the seed.
func ExampleSimulator() {
	sim, err := simulator.New(2, simulator.WithSeed(7))
	if err != nil {
		fmt.Println("setup failed:", err)

		return
	}

	bell := circuit.New(
		circuit.DefineRegister{Name: "ro", Length: 2, Element: registers.Bit, Output: true},
		circuit.Hadamard{Qubit: 0},
		circuit.CNOT{Control: 0, Target: 1},
		circuit.PragmaRepeatedMeasurement{Readout: "ro", Repetitions: 100},
	)

	space, err := sim.RunCircuit(context.Background(), bell)
	if err != nil {
		fmt.Println("run failed:", err)

		return
	}

	m := measurement.NewPauliZProduct()
	zz := m.AddPauliProduct("ro", []int{0, 1})
	_ = m.AddLinearCombination("corr", map[int]float64{zz: 1.0})

	values, err := m.Evaluate(space)
	if err != nil {
		fmt.Println("evaluation failed:", err)

		return
	}
	fmt.Printf("<Z0 Z1> = %.1f\n", values["corr"])
	// Output:
	// <Z0 Z1> = 1.0
}
