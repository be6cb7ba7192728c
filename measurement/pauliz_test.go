// Package measurement_test exercises parity estimation, linear
// combinations, eager index validation, and the explicit no-data rules.
package measurement_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarclab/quarc/measurement"
	"github.com/quarclab/quarc/registers"
)

// bitSpace builds a space with one declared bit register holding rows.
func bitSpace(t *testing.T, name string, rows [][]bool) registers.Space {
	t.Helper()
	s := registers.NewSpace()
	require.NoError(t, s.Declare(name, registers.Bit), "declare %s", name)
	for _, row := range rows {
		require.NoError(t, s.AppendBitRow(name, registers.BitRow(row)), "append to %s", name)
	}

	return s
}

// TestEvaluate_BalancedParityIsZero pins the two-bit parity estimator on
// the four balanced outcomes: two even rows, two odd rows, mean exactly 0.
func TestEvaluate_BalancedParityIsZero(t *testing.T) {
	space := bitSpace(t, "ro", [][]bool{
		{false, false},
		{true, true},
		{false, true},
		{true, false},
	})

	m := measurement.NewPauliZProduct()
	zz := m.AddPauliProduct("ro", []int{0, 1})
	require.NoError(t, m.AddLinearCombination("zz", map[int]float64{zz: 1.0}), "define output")

	got, err := m.Evaluate(space)
	require.NoError(t, err, "balanced rows must evaluate")
	assert.Equal(t, 0.0, got["zz"], "two even and two odd parities must average to exactly 0")
}

// TestEvaluate_SingleQubitMean checks a plain <Z> estimate.
func TestEvaluate_SingleQubitMean(t *testing.T) {
	space := bitSpace(t, "ro", [][]bool{{false}, {false}, {true}, {false}})

	m := measurement.NewPauliZProduct()
	z := m.AddPauliProduct("ro", []int{0})
	require.NoError(t, m.AddLinearCombination("z", map[int]float64{z: 1.0}), "define output")

	got, err := m.Evaluate(space)
	require.NoError(t, err, "evaluation must succeed")
	assert.Equal(t, 0.5, got["z"], "(3-1)/4 must be exactly 0.5")
}

// TestEvaluate_LinearCombination pins the weighted-sum contract: product
// estimates 0.5 and -0.5 under coefficients 3.0 and 1.0 yield 1.0.
func TestEvaluate_LinearCombination(t *testing.T) {
	space := bitSpace(t, "a", [][]bool{{true}, {false}, {false}, {false}})
	b := bitSpace(t, "b", [][]bool{{true}, {true}, {true}, {false}})
	space = space.Merge(b)

	m := measurement.NewPauliZProduct()
	p0 := m.AddPauliProduct("a", []int{0}) // estimate +0.5
	p1 := m.AddPauliProduct("b", []int{0}) // estimate -0.5
	require.NoError(t, m.AddLinearCombination("out", map[int]float64{p0: 3.0, p1: 1.0}), "define output")

	got, err := m.Evaluate(space)
	require.NoError(t, err, "evaluation must succeed")
	assert.Equal(t, 1.0, got["out"], "3.0*0.5 + 1.0*(-0.5) must be exactly 1.0")
}

// TestEvaluate_DuplicateSlotsCancel verifies Z*Z = identity through the
// XOR parity: a doubled slot never flips the parity.
func TestEvaluate_DuplicateSlotsCancel(t *testing.T) {
	space := bitSpace(t, "ro", [][]bool{{true}, {true}, {false}})

	m := measurement.NewPauliZProduct()
	p := m.AddPauliProduct("ro", []int{0, 0})
	require.NoError(t, m.AddLinearCombination("id", map[int]float64{p: 1.0}), "define output")

	got, err := m.Evaluate(space)
	require.NoError(t, err, "evaluation must succeed")
	assert.Equal(t, 1.0, got["id"], "doubled slot must behave as the identity observable")
}

// TestEvaluate_ZeroShots pins the explicit no-data failure for a register
// that is declared but recorded no rows.
func TestEvaluate_ZeroShots(t *testing.T) {
	space := bitSpace(t, "ro", nil)

	m := measurement.NewPauliZProduct()
	p := m.AddPauliProduct("ro", []int{0})
	require.NoError(t, m.AddLinearCombination("z", map[int]float64{p: 1.0}), "define output")

	_, err := m.Evaluate(space)
	require.Error(t, err, "zero rows must not evaluate")
	assert.ErrorIs(t, err, measurement.ErrNoData, "failure must be the no-data sentinel")

	var nd *measurement.NoDataError
	require.True(t, errors.As(err, &nd), "error must carry the register name")
	assert.Equal(t, "ro", nd.Readout, "offending register must be named")
}

// TestEvaluate_MissingRegister distinguishes absent from empty.
func TestEvaluate_MissingRegister(t *testing.T) {
	m := measurement.NewPauliZProduct()
	p := m.AddPauliProduct("ghost", []int{0})
	require.NoError(t, m.AddLinearCombination("z", map[int]float64{p: 1.0}), "define output")

	_, err := m.Evaluate(registers.NewSpace())
	assert.ErrorIs(t, err, measurement.ErrMissingRegister, "absent register must fail distinctly")
}

// TestEvaluate_MaskBeyondRow verifies slot bounds against recorded rows.
func TestEvaluate_MaskBeyondRow(t *testing.T) {
	space := bitSpace(t, "ro", [][]bool{{true}})

	m := measurement.NewPauliZProduct()
	p := m.AddPauliProduct("ro", []int{1})
	require.NoError(t, m.AddLinearCombination("z", map[int]float64{p: 1.0}), "define output")

	_, err := m.Evaluate(space)
	require.Error(t, err, "slot 1 against width-1 rows must fail")
	assert.ErrorIs(t, err, measurement.ErrMaskRange, "failure must be the mask-range sentinel")
}

// TestEvaluate_UnreferencedProductNotDemanded checks lazy demand: a
// product nothing references may point at a register that never arrives.
func TestEvaluate_UnreferencedProductNotDemanded(t *testing.T) {
	space := bitSpace(t, "ro", [][]bool{{false}})

	m := measurement.NewPauliZProduct()
	used := m.AddPauliProduct("ro", []int{0})
	m.AddPauliProduct("never_recorded", []int{0})
	require.NoError(t, m.AddLinearCombination("z", map[int]float64{used: 1.0}), "define output")

	got, err := m.Evaluate(space)
	require.NoError(t, err, "unreferenced products must not be demanded")
	assert.Equal(t, 1.0, got["z"], "referenced product evaluates normally")
}

// TestAddLinearCombination_EagerValidation pins definition-time failure
// for unknown and negative indices, and overwrite-on-redefine.
func TestAddLinearCombination_EagerValidation(t *testing.T) {
	m := measurement.NewPauliZProduct()
	p := m.AddPauliProduct("ro", []int{0})

	err := m.AddLinearCombination("bad", map[int]float64{p + 1: 1.0})
	require.Error(t, err, "unknown index must fail at definition time")
	assert.ErrorIs(t, err, measurement.ErrUnknownProductIndex, "unknown-index sentinel")

	var ue *measurement.UnknownProductIndexError
	require.True(t, errors.As(err, &ue), "error must carry detail")
	assert.Equal(t, "bad", ue.Name, "combination name reported")
	assert.Equal(t, p+1, ue.Index, "offending index reported")

	assert.ErrorIs(t, m.AddLinearCombination("neg", map[int]float64{-1: 1.0}),
		measurement.ErrUnknownProductIndex, "negative index must fail")

	require.NoError(t, m.AddLinearCombination("out", map[int]float64{p: 1.0}), "first definition")
	require.NoError(t, m.AddLinearCombination("out", map[int]float64{p: -2.0}), "redefinition overwrites")
	space := bitSpace(t, "ro", [][]bool{{false}})
	got, err := m.Evaluate(space)
	require.NoError(t, err, "evaluation must succeed")
	assert.Equal(t, -2.0, got["out"], "latest definition must win")
}

// TestEvaluate_EmptyDescriptor returns an empty output map, not an error.
func TestEvaluate_EmptyDescriptor(t *testing.T) {
	m := measurement.NewPauliZProduct()
	got, err := m.Evaluate(registers.NewSpace())
	require.NoError(t, err, "nothing demanded, nothing fails")
	assert.Empty(t, got, "no outputs defined")
}

// TestPauliZProduct_JSONRoundTrip requires observational equivalence of
// the decoded descriptor: structural equality and identical outputs.
func TestPauliZProduct_JSONRoundTrip(t *testing.T) {
	m := measurement.NewPauliZProduct()
	zz := m.AddPauliProduct("ro", []int{0, 1})
	z0 := m.AddPauliProduct("ro", []int{0})
	require.NoError(t, m.AddLinearCombination("energy", map[int]float64{zz: 3.0, z0: 1.0}), "define energy")
	require.NoError(t, m.AddLinearCombination("zz", map[int]float64{zz: 1.0}), "define zz")

	data, err := json.Marshal(m)
	require.NoError(t, err, "marshal must succeed")

	var got measurement.PauliZProduct
	require.NoError(t, json.Unmarshal(data, &got), "unmarshal must succeed")
	assert.True(t, m.Equal(got), "descriptor must round-trip structurally")

	space := bitSpace(t, "ro", [][]bool{
		{false, false},
		{false, true},
		{false, false},
	})
	want, err := m.Evaluate(space)
	require.NoError(t, err, "evaluate original")
	have, err := got.Evaluate(space)
	require.NoError(t, err, "evaluate decoded")
	assert.Equal(t, want, have, "outputs must match after the round trip")
}

// TestPauliZProduct_JSONRejectsDanglingIndex verifies wire-level
// validation reuses the registration rules.
func TestPauliZProduct_JSONRejectsDanglingIndex(t *testing.T) {
	data := []byte(`{
		"pauli_products": [{"readout": "ro", "qubits": [0]}],
		"linear_combinations": [{"name": "bad", "terms": [{"product": 7, "coefficient": 1}]}]
	}`)
	var m measurement.PauliZProduct
	err := json.Unmarshal(data, &m)
	require.Error(t, err, "dangling index must fail to decode")
	assert.ErrorIs(t, err, measurement.ErrUnknownProductIndex, "unknown-index sentinel through decode")
}
