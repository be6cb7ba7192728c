// Package circuit defines the quantum circuit intermediate representation:
// a closed set of operation variants and an ordered, value-semantic
// container for them.
//
// 🚀 What is a Circuit?
//
//	A Circuit is the unit a backend executes: gates, classical register
//	definitions, measurements, and pragmas, in program order.  Nothing in
//	this package runs anything; the representation stays independent of
//	any execution strategy so the same circuit value can be simulated,
//	rendered, exported, or shipped to hardware.
//
// ✨ Key features:
//   - closed variant set: every Operation lives in this package and is
//     sealed, so consumers dispatch exhaustively and a new variant is a
//     compile-visible change, never a silently ignored instruction
//   - value semantics: Concatenate, Substitute, and Bind return new
//     circuits; appending to one circuit never mutates another
//   - symbolic parameters: rotation angles and noise rates are
//     scalar.Value, carried unresolved until Substitute binds them;
//     Substitute is all-or-nothing, so a half-bound circuit cannot leak
//   - introspection: involved qubits, operation kinds, register
//     definitions, and free parameter names, computed recursively
//     through conditional bodies
//   - lossless JSON: an ordered array of type-tagged envelopes; symbolic
//     expressions survive as text
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/quarclab/quarc/circuit"
//	    "github.com/quarclab/quarc/registers"
//	    "github.com/quarclab/quarc/scalar"
//	)
//
//	var c circuit.Circuit
//	c.Append(
//	    circuit.DefineRegister{Name: "ro", Length: 2, Element: registers.Bit, Output: true},
//	    circuit.RotateX{Qubit: 0, Theta: scalar.Symbolic("theta")},
//	    circuit.CNOT{Control: 0, Target: 1},
//	    circuit.PragmaRepeatedMeasurement{Readout: "ro", Repetitions: 1000},
//	)
//	bound, err := c.Substitute(scalar.Bindings{"theta": 1.57})
//
// Operation groups:
//
//   - Gates: Hadamard, PauliX/Y/Z, SqrtPauliX, SGate, TGate,
//     RotateX/Y/Z, PhaseShift, CNOT, ControlledPauliZ,
//     ControlledPhaseShift, SWAP, ISwap, Toffoli.
//   - Classical: DefineRegister, MeasureQubit.
//   - Pragmas: PragmaRepeatedMeasurement, PragmaSetStateVector,
//     PragmaGetStateVector, PragmaConditional, PragmaDamping,
//     PragmaDephasing, PragmaDepolarising.
//
// Error handling (sentinel errors):
//
//   - ErrUnknownOperation: a serialized type tag outside the variant set.
//   - ErrNegativeQubit, ErrBadDefinition, ErrBadRepetitions: structural
//     invariant violations reported by Validate.
package circuit
