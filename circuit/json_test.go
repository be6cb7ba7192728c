package circuit_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarclab/quarc/circuit"
	"github.com/quarclab/quarc/registers"
	"github.com/quarclab/quarc/scalar"
)

// fullCircuit touches every operation family so the round trip covers the
// whole variant set.
func fullCircuit() circuit.Circuit {
	rotation := circuit.New(circuit.Hadamard{Qubit: 0})

	return circuit.New(
		circuit.DefineRegister{Name: "ro", Length: 2, Element: registers.Bit, Output: true},
		circuit.DefineRegister{Name: "psi", Length: 4, Element: registers.Complex, Output: true},
		circuit.Hadamard{Qubit: 0},
		circuit.PauliX{Qubit: 1},
		circuit.PauliY{Qubit: 1},
		circuit.PauliZ{Qubit: 0},
		circuit.SqrtPauliX{Qubit: 0},
		circuit.SGate{Qubit: 1},
		circuit.TGate{Qubit: 1},
		circuit.RotateX{Qubit: 0, Theta: scalar.Symbolic("theta")},
		circuit.RotateY{Qubit: 0, Theta: scalar.Float(0.25)},
		circuit.RotateZ{Qubit: 1, Theta: scalar.Symbolic("2*phi+pi/4")},
		circuit.PhaseShift{Qubit: 1, Phi: scalar.Float(1.5)},
		circuit.CNOT{Control: 0, Target: 1},
		circuit.ControlledPauliZ{Control: 1, Target: 0},
		circuit.ControlledPhaseShift{Control: 0, Target: 1, Phi: scalar.Symbolic("phi")},
		circuit.SWAP{Qubit0: 0, Qubit1: 1},
		circuit.ISwap{Qubit0: 0, Qubit1: 1},
		circuit.Toffoli{Control0: 0, Control1: 1, Target: 2},
		circuit.PragmaSetStateVector{Amplitudes: []complex128{1, 0, 0, complex(0, 0.5)}},
		circuit.PragmaGetStateVector{Readout: "psi", Rotation: &rotation},
		circuit.MeasureQubit{Qubit: 0, Readout: "ro", ReadoutIndex: 0},
		circuit.PragmaConditional{
			Register: "ro",
			Bit:      0,
			Body:     circuit.New(circuit.PauliX{Qubit: 1}),
		},
		circuit.PragmaDamping{Qubit: 0, GateTime: scalar.Float(1), Rate: scalar.Symbolic("gamma")},
		circuit.PragmaDephasing{Qubit: 1, GateTime: scalar.Float(1), Rate: scalar.Float(0.01)},
		circuit.PragmaDepolarising{Qubit: 2, GateTime: scalar.Float(1), Rate: scalar.Float(0.02)},
		circuit.PragmaRepeatedMeasurement{
			Readout:      "ro",
			Repetitions:  100,
			QubitMapping: map[int]int{0: 0, 1: 1},
		},
	)
}

// TestJSON_RoundTripWholeVariantSet encodes and decodes a circuit using
// every variant and requires structural equality.
func TestJSON_RoundTripWholeVariantSet(t *testing.T) {
	want := fullCircuit()

	data, err := json.Marshal(want)
	require.NoError(t, err, "marshal must succeed")

	var got circuit.Circuit
	require.NoError(t, json.Unmarshal(data, &got), "unmarshal must succeed")
	assert.True(t, want.Equal(got), "round trip must preserve the circuit")
}

// TestJSON_SymbolicSurvives verifies free parameters stay free across the
// wire and substitute identically afterward.
func TestJSON_SymbolicSurvives(t *testing.T) {
	want := circuit.New(
		circuit.RotateZ{Qubit: 0, Theta: scalar.Symbolic("2*phi+pi/4")},
	)

	data, err := json.Marshal(want)
	require.NoError(t, err, "marshal must succeed")
	assert.Contains(t, string(data), `"2*phi+pi/4"`, "expression text must ride verbatim")

	var got circuit.Circuit
	require.NoError(t, json.Unmarshal(data, &got), "unmarshal must succeed")
	assert.Equal(t, []string{"phi"}, got.Variables(), "free names must survive")

	b := scalar.Bindings{"phi": 0.5}
	boundWant, err := want.Substitute(b)
	require.NoError(t, err, "substitute original")
	boundGot, err := got.Substitute(b)
	require.NoError(t, err, "substitute decoded")
	assert.True(t, boundWant.Equal(boundGot), "substitution must commute with the round trip")
}

// TestJSON_UnknownOperationRejected pins the closed-set decode failure.
func TestJSON_UnknownOperationRejected(t *testing.T) {
	data := []byte(`[{"type":"WarpDrive","op":{"qubit":0}}]`)
	var c circuit.Circuit
	err := json.Unmarshal(data, &c)
	require.Error(t, err, "unknown type tag must fail")
	assert.ErrorIs(t, err, circuit.ErrUnknownOperation, "failure must be the unknown-operation sentinel")
}

// TestJSON_AmplitudePairs pins the [re, im] wire shape of state injection.
func TestJSON_AmplitudePairs(t *testing.T) {
	c := circuit.New(circuit.PragmaSetStateVector{
		Amplitudes: []complex128{complex(0.5, -0.5), 0},
	})
	data, err := json.Marshal(c)
	require.NoError(t, err, "marshal must succeed")
	assert.Contains(t, string(data), `[[0.5,-0.5],[0,0]]`, "amplitudes must encode as pairs")

	var got circuit.Circuit
	require.NoError(t, json.Unmarshal(data, &got), "unmarshal must succeed")
	assert.True(t, c.Equal(got), "amplitudes must round-trip")
}

// TestJSON_EmptyCircuit round-trips the empty list.
func TestJSON_EmptyCircuit(t *testing.T) {
	var c circuit.Circuit
	data, err := json.Marshal(c)
	require.NoError(t, err, "marshal empty")
	assert.Equal(t, "[]", string(data), "empty circuit is an empty array")

	var got circuit.Circuit
	require.NoError(t, json.Unmarshal(data, &got), "unmarshal empty")
	assert.True(t, c.Equal(got), "empty must round-trip")
}
