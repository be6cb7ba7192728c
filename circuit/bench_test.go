package circuit_test

import (
	"testing"

	"github.com/quarclab/quarc/circuit"
	"github.com/quarclab/quarc/scalar"
)

// BenchmarkSubstitute measures full binding of a layered variational
// ansatz, the per-run cost every parameter sweep pays.
func BenchmarkSubstitute(b *testing.B) {
	var c circuit.Circuit
	for layer := 0; layer < 16; layer++ {
		for q := 0; q < 4; q++ {
			c.Append(circuit.RotateY{Qubit: q, Theta: scalar.Symbolic("theta")})
		}
		for q := 0; q < 3; q++ {
			c.Append(circuit.CNOT{Control: q, Target: q + 1})
		}
	}
	bind := scalar.Bindings{"theta": 0.3}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Substitute(bind); err != nil {
			b.Fatalf("Substitute failed: %v", err)
		}
	}
}
