// Package circuit_test exercises circuit construction, value semantics of
// concatenation, all-or-nothing substitution, and recursive introspection.
package circuit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarclab/quarc/circuit"
	"github.com/quarclab/quarc/registers"
	"github.com/quarclab/quarc/scalar"
)

// bellPrep returns the standard two-qubit entangling prefix.
func bellPrep() circuit.Circuit {
	return circuit.New(
		circuit.Hadamard{Qubit: 0},
		circuit.CNOT{Control: 0, Target: 1},
	)
}

// TestCircuit_AppendPreservesOrder verifies ordering and that Operations
// hands out a copy.
func TestCircuit_AppendPreservesOrder(t *testing.T) {
	var c circuit.Circuit
	c.Append(circuit.Hadamard{Qubit: 0})
	c.Append(circuit.CNOT{Control: 0, Target: 1}, circuit.PauliZ{Qubit: 1})

	require.Equal(t, 3, c.Len(), "three operations appended")
	ops := c.Operations()
	assert.Equal(t, circuit.KindHadamard, ops[0].Kind(), "first op")
	assert.Equal(t, circuit.KindCNOT, ops[1].Kind(), "second op")
	assert.Equal(t, circuit.KindPauliZ, ops[2].Kind(), "third op")

	ops[0] = circuit.PauliX{Qubit: 5}
	assert.Equal(t, circuit.KindHadamard, c.Operations()[0].Kind(),
		"mutating the returned slice must not touch the circuit")
}

// TestCircuit_ConcatenateDoesNotMutate verifies both inputs survive
// concatenation untouched and stay independent of the result.
func TestCircuit_ConcatenateDoesNotMutate(t *testing.T) {
	a := circuit.New(circuit.Hadamard{Qubit: 0})
	b := circuit.New(circuit.PauliX{Qubit: 1})

	joined := a.Concatenate(b)
	require.Equal(t, 2, joined.Len(), "result holds both sequences")
	assert.Equal(t, 1, a.Len(), "receiver unchanged")
	assert.Equal(t, 1, b.Len(), "argument unchanged")

	joined.Append(circuit.PauliZ{Qubit: 0})
	assert.Equal(t, 1, a.Len(), "appending to the result must not grow the receiver")
	assert.Equal(t, 1, b.Len(), "appending to the result must not grow the argument")
}

// TestCircuit_ConcatenateAssociative pins (a+b)+c == a+(b+c) while all
// three operands keep their own contents.
func TestCircuit_ConcatenateAssociative(t *testing.T) {
	a := circuit.New(circuit.Hadamard{Qubit: 0})
	b := circuit.New(circuit.CNOT{Control: 0, Target: 1})
	c := circuit.New(circuit.MeasureQubit{Qubit: 1, Readout: "ro", ReadoutIndex: 0})

	left := a.Concatenate(b).Concatenate(c)
	right := a.Concatenate(b.Concatenate(c))
	assert.True(t, left.Equal(right), "concatenation must be associative")

	assert.Equal(t, 1, a.Len(), "operand a unchanged")
	assert.Equal(t, 1, b.Len(), "operand b unchanged")
	assert.Equal(t, 1, c.Len(), "operand c unchanged")
}

// TestCircuit_SubstituteRoundTrip builds a parameterized circuit, binds a
// complete assignment, and checks every value became concrete with the
// expected numbers, leaving the original symbolic.
func TestCircuit_SubstituteRoundTrip(t *testing.T) {
	param := circuit.New(
		circuit.RotateX{Qubit: 0, Theta: scalar.Symbolic("2*alpha")},
		circuit.PragmaDamping{Qubit: 0, GateTime: scalar.Float(1), Rate: scalar.Symbolic("gamma/2")},
	)
	require.True(t, param.IsParameterized(), "circuit starts parameterized")

	bound, err := param.Substitute(scalar.Bindings{"alpha": 0.5, "gamma": 0.2})
	require.NoError(t, err, "complete bindings must substitute")
	assert.False(t, bound.IsParameterized(), "result must be fully concrete")

	rx, ok := bound.Operations()[0].(circuit.RotateX)
	require.True(t, ok, "first op stays a RotateX")
	theta, ok := rx.Theta.Float()
	require.True(t, ok, "theta must be concrete")
	assert.Equal(t, 1.0, theta, "2*alpha at alpha=0.5")

	damp, ok := bound.Operations()[1].(circuit.PragmaDamping)
	require.True(t, ok, "second op stays a PragmaDamping")
	rate, ok := damp.Rate.Float()
	require.True(t, ok, "rate must be concrete")
	assert.Equal(t, 0.1, rate, "gamma/2 at gamma=0.2")

	assert.True(t, param.IsParameterized(), "original circuit must stay symbolic")
}

// TestCircuit_SubstituteAllOrNothing verifies a missing binding fails the
// whole substitution and reports the name, with the original left usable.
func TestCircuit_SubstituteAllOrNothing(t *testing.T) {
	c := circuit.New(
		circuit.RotateX{Qubit: 0, Theta: scalar.Symbolic("theta")},
		circuit.RotateZ{Qubit: 1, Theta: scalar.Symbolic("phi")},
	)

	_, err := c.Substitute(scalar.Bindings{"theta": 1})
	require.Error(t, err, "incomplete bindings must fail")
	assert.ErrorIs(t, err, scalar.ErrUnboundVariable, "cause must be the unbound sentinel")

	var ue *scalar.UnboundVariableError
	require.True(t, errors.As(err, &ue), "error must carry the variable name")
	assert.Equal(t, "phi", ue.Name, "the missing name must be reported")

	// The original is intact and substitutes fine with the full set.
	bound, err := c.Substitute(scalar.Bindings{"theta": 1, "phi": 2})
	require.NoError(t, err, "full bindings must substitute after the failed attempt")
	assert.False(t, bound.IsParameterized(), "result must be concrete")
}

// TestCircuit_SubstituteRecursesIntoConditional checks nested bodies are
// bound together with the enclosing circuit.
func TestCircuit_SubstituteRecursesIntoConditional(t *testing.T) {
	body := circuit.New(circuit.RotateY{Qubit: 2, Theta: scalar.Symbolic("beta")})
	c := circuit.New(
		circuit.PragmaConditional{Register: "m", Bit: 0, Body: body},
	)
	require.Equal(t, []string{"beta"}, c.Variables(), "nested names must surface")

	bound, err := c.Substitute(scalar.Bindings{"beta": 3})
	require.NoError(t, err, "nested substitution must succeed")

	cond := bound.Operations()[0].(circuit.PragmaConditional)
	ry := cond.Body.Operations()[0].(circuit.RotateY)
	v, ok := ry.Theta.Float()
	require.True(t, ok, "nested theta must be concrete")
	assert.Equal(t, 3.0, v, "nested binding value")

	_, err = c.Substitute(scalar.Bindings{})
	assert.ErrorIs(t, err, scalar.ErrUnboundVariable, "missing nested name must fail the whole substitution")
}

// TestCircuit_BindPartial verifies partial binding reduces without failing.
func TestCircuit_BindPartial(t *testing.T) {
	c := circuit.New(
		circuit.RotateX{Qubit: 0, Theta: scalar.Symbolic("a+b")},
	)
	half := c.Bind(scalar.Bindings{"a": 1})
	assert.True(t, half.IsParameterized(), "unbound name keeps the circuit parameterized")
	assert.Equal(t, []string{"b"}, half.Variables(), "bound name must be gone")
	assert.Equal(t, []string{"a", "b"}, c.Variables(), "original must keep both names")
}

// TestCircuit_Introspection covers involved qubits, qubit count, kinds,
// and definitions, including recursion through a conditional body.
func TestCircuit_Introspection(t *testing.T) {
	body := circuit.New(
		circuit.PauliX{Qubit: 4},
		circuit.DefineRegister{Name: "inner", Length: 1, Element: registers.Bit},
	)
	c := circuit.New(
		circuit.DefineRegister{Name: "ro", Length: 2, Element: registers.Bit, Output: true},
		circuit.Hadamard{Qubit: 0},
		circuit.CNOT{Control: 0, Target: 2},
		circuit.PragmaConditional{Register: "ro", Bit: 0, Body: body},
	)

	assert.Equal(t, []int{0, 2, 4}, c.InvolvedQubits(), "distinct sorted qubits, nested included")
	assert.Equal(t, 5, c.QubitCount(), "max index 4 needs 5 qubits")
	assert.Equal(t,
		[]circuit.Kind{
			circuit.KindCNOT,
			circuit.KindDefineRegister,
			circuit.KindHadamard,
			circuit.KindPauliX,
			circuit.KindPragmaConditional,
		},
		c.OperationKinds(), "sorted distinct kinds, nested included")

	defs := c.Definitions()
	require.Len(t, defs, 2, "outer and nested definitions")
	assert.Equal(t, "ro", defs[0].Name, "outer definition first")
	assert.Equal(t, "inner", defs[1].Name, "nested definition second")
}

// TestCircuit_Validate covers each structural invariant.
func TestCircuit_Validate(t *testing.T) {
	assert.NoError(t, bellPrep().Validate(), "well-formed circuit must validate")

	bad := circuit.New(circuit.Hadamard{Qubit: -1})
	assert.ErrorIs(t, bad.Validate(), circuit.ErrNegativeQubit, "negative qubit must fail")

	bad = circuit.New(circuit.DefineRegister{Name: "", Length: 1, Element: registers.Bit})
	assert.ErrorIs(t, bad.Validate(), circuit.ErrBadDefinition, "empty register name must fail")

	bad = circuit.New(circuit.DefineRegister{Name: "ro", Length: 0, Element: registers.Bit})
	assert.ErrorIs(t, bad.Validate(), circuit.ErrBadDefinition, "zero length must fail")

	bad = circuit.New(circuit.PragmaRepeatedMeasurement{Readout: "ro", Repetitions: 0})
	assert.ErrorIs(t, bad.Validate(), circuit.ErrBadRepetitions, "zero repetitions must fail")

	nested := circuit.New(circuit.PragmaConditional{
		Register: "ro",
		Bit:      0,
		Body:     circuit.New(circuit.PauliX{Qubit: -3}),
	})
	assert.ErrorIs(t, nested.Validate(), circuit.ErrNegativeQubit, "nested violations must surface")
}

// TestCircuit_ZeroValue documents that the zero Circuit is usable.
func TestCircuit_ZeroValue(t *testing.T) {
	var c circuit.Circuit
	assert.Equal(t, 0, c.Len(), "zero circuit is empty")
	assert.Equal(t, 0, c.QubitCount(), "no qubits involved")
	assert.NoError(t, c.Validate(), "empty circuit is valid")

	bound, err := c.Substitute(nil)
	assert.NoError(t, err, "empty substitution succeeds")
	assert.True(t, c.Equal(bound), "empty in, empty out")
}
