package simulator_test

import (
	"context"
	"testing"

	"github.com/quarclab/quarc/circuit"
	"github.com/quarclab/quarc/registers"
	"github.com/quarclab/quarc/simulator"
)

// BenchmarkRunCircuit_GateLayer measures a dense layer of single- and
// two-qubit gates on 12 qubits (4096 amplitudes), the hot path of every
// simulation.
func BenchmarkRunCircuit_GateLayer(b *testing.B) {
	const qubits = 12
	c := circuit.New()
	for q := 0; q < qubits; q++ {
		c.Append(circuit.Hadamard{Qubit: q})
	}
	for q := 0; q+1 < qubits; q++ {
		c.Append(circuit.CNOT{Control: q, Target: q + 1})
	}

	sim, err := simulator.New(qubits, simulator.WithSeed(1))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = sim.RunCircuit(ctx, c); err != nil {
			b.Fatalf("RunCircuit failed: %v", err)
		}
	}
}

// BenchmarkRunCircuit_Sampling measures repeated-measurement throughput:
// 1024 shots of an 8-qubit superposition per iteration.
func BenchmarkRunCircuit_Sampling(b *testing.B) {
	const qubits = 8
	c := circuit.New(
		circuit.DefineRegister{Name: "ro", Length: qubits, Element: registers.Bit, Output: true},
	)
	for q := 0; q < qubits; q++ {
		c.Append(circuit.Hadamard{Qubit: q})
	}
	c.Append(circuit.PragmaRepeatedMeasurement{Readout: "ro", Repetitions: 1024})

	sim, err := simulator.New(qubits, simulator.WithSeed(1))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = sim.RunCircuit(ctx, c); err != nil {
			b.Fatalf("RunCircuit failed: %v", err)
		}
	}
}
