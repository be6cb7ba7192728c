// Package measurement turns raw measurement records into named
// expectation values.
//
// 🚀 How the estimator works
//
//	A Pauli-Z product is a parity observable: pick a bit register and a
//	set of qubit slots, and each recorded row contributes (-1)^parity of
//	the selected bits.  The product's estimate is the arithmetic mean of
//	those contributions over all rows, an unbiased estimator of the
//	quantum expectation value <Z_i Z_j ...> of the state that produced
//	the rows.  Named outputs are then linear combinations of product
//	estimates, which is how Hamiltonian terms with coefficients become a
//	single energy number.
//
// ✨ Key behaviors:
//   - products are registered once and addressed by a stable index;
//     indices are assigned in insertion order and never reused
//   - duplicate qubit slots in a mask cancel pairwise (Z*Z = identity),
//     so masks need no validation
//   - linear combinations are validated eagerly: an index that was never
//     registered fails at definition time, not at evaluation time
//   - evaluation distinguishes a register that never arrived from one
//     that arrived with zero rows; both are explicit errors, never a
//     silent zero
//
// ⚙️ Usage:
//
//	m := measurement.NewPauliZProduct()
//	zz := m.AddPauliProduct("ro", []int{0, 1})
//	z0 := m.AddPauliProduct("ro", []int{0})
//	_ = m.AddLinearCombination("energy", map[int]float64{zz: 3.0, z0: 1.0})
//
//	values, err := m.Evaluate(space)
//	// values["energy"] == 3.0*<Z0 Z1> + 1.0*<Z0>
//
// Error handling: ErrUnknownProductIndex, ErrMissingRegister, ErrNoData,
// and ErrMaskRange, each carried by a typed error with the offending
// detail (see the error types in this package).
package measurement
