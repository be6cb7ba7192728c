package circuit

import (
	"fmt"

	"github.com/quarclab/quarc/scalar"
)

// Single-qubit gates. The fixed gates carry only their target qubit; the
// rotation family carries one angle that may stay symbolic until run time.

// Hadamard applies the basis-change gate H.
type Hadamard struct {
	Qubit int `json:"qubit"`
}

func (g Hadamard) Kind() Kind                                    { return KindHadamard }
func (g Hadamard) InvolvedQubits() []int                         { return []int{g.Qubit} }
func (g Hadamard) Substitute(scalar.Bindings) (Operation, error) { return g, nil }
func (g Hadamard) Bind(scalar.Bindings) Operation                { return g }
func (g Hadamard) String() string                                { return fmt.Sprintf("Hadamard(%d)", g.Qubit) }
func (g Hadamard) isOperation()                                  {}

// PauliX applies the bit-flip gate X.
type PauliX struct {
	Qubit int `json:"qubit"`
}

func (g PauliX) Kind() Kind                                    { return KindPauliX }
func (g PauliX) InvolvedQubits() []int                         { return []int{g.Qubit} }
func (g PauliX) Substitute(scalar.Bindings) (Operation, error) { return g, nil }
func (g PauliX) Bind(scalar.Bindings) Operation                { return g }
func (g PauliX) String() string                                { return fmt.Sprintf("PauliX(%d)", g.Qubit) }
func (g PauliX) isOperation()                                  {}

// PauliY applies the Y gate.
type PauliY struct {
	Qubit int `json:"qubit"`
}

func (g PauliY) Kind() Kind                                    { return KindPauliY }
func (g PauliY) InvolvedQubits() []int                         { return []int{g.Qubit} }
func (g PauliY) Substitute(scalar.Bindings) (Operation, error) { return g, nil }
func (g PauliY) Bind(scalar.Bindings) Operation                { return g }
func (g PauliY) String() string                                { return fmt.Sprintf("PauliY(%d)", g.Qubit) }
func (g PauliY) isOperation()                                  {}

// PauliZ applies the phase-flip gate Z.
type PauliZ struct {
	Qubit int `json:"qubit"`
}

func (g PauliZ) Kind() Kind                                    { return KindPauliZ }
func (g PauliZ) InvolvedQubits() []int                         { return []int{g.Qubit} }
func (g PauliZ) Substitute(scalar.Bindings) (Operation, error) { return g, nil }
func (g PauliZ) Bind(scalar.Bindings) Operation                { return g }
func (g PauliZ) String() string                                { return fmt.Sprintf("PauliZ(%d)", g.Qubit) }
func (g PauliZ) isOperation()                                  {}

// SqrtPauliX applies the square root of X, a half bit-flip.
type SqrtPauliX struct {
	Qubit int `json:"qubit"`
}

func (g SqrtPauliX) Kind() Kind                                    { return KindSqrtPauliX }
func (g SqrtPauliX) InvolvedQubits() []int                         { return []int{g.Qubit} }
func (g SqrtPauliX) Substitute(scalar.Bindings) (Operation, error) { return g, nil }
func (g SqrtPauliX) Bind(scalar.Bindings) Operation                { return g }
func (g SqrtPauliX) String() string                                { return fmt.Sprintf("SqrtPauliX(%d)", g.Qubit) }
func (g SqrtPauliX) isOperation()                                  {}

// SGate applies the quarter-turn phase gate S = diag(1, i).
type SGate struct {
	Qubit int `json:"qubit"`
}

func (g SGate) Kind() Kind                                    { return KindSGate }
func (g SGate) InvolvedQubits() []int                         { return []int{g.Qubit} }
func (g SGate) Substitute(scalar.Bindings) (Operation, error) { return g, nil }
func (g SGate) Bind(scalar.Bindings) Operation                { return g }
func (g SGate) String() string                                { return fmt.Sprintf("SGate(%d)", g.Qubit) }
func (g SGate) isOperation()                                  {}

// TGate applies the eighth-turn phase gate T = diag(1, e^{iπ/4}).
type TGate struct {
	Qubit int `json:"qubit"`
}

func (g TGate) Kind() Kind                                    { return KindTGate }
func (g TGate) InvolvedQubits() []int                         { return []int{g.Qubit} }
func (g TGate) Substitute(scalar.Bindings) (Operation, error) { return g, nil }
func (g TGate) Bind(scalar.Bindings) Operation                { return g }
func (g TGate) String() string                                { return fmt.Sprintf("TGate(%d)", g.Qubit) }
func (g TGate) isOperation()                                  {}

// RotateX rotates one qubit around the X axis by Theta radians.
type RotateX struct {
	Qubit int          `json:"qubit"`
	Theta scalar.Value `json:"theta"`
}

func (g RotateX) Kind() Kind            { return KindRotateX }
func (g RotateX) InvolvedQubits() []int { return []int{g.Qubit} }

func (g RotateX) Substitute(b scalar.Bindings) (Operation, error) {
	theta, err := substituteValue(g.Theta, b)
	if err != nil {
		return nil, err
	}

	return RotateX{Qubit: g.Qubit, Theta: theta}, nil
}

func (g RotateX) Bind(b scalar.Bindings) Operation {
	return RotateX{Qubit: g.Qubit, Theta: g.Theta.Bind(b)}
}

func (g RotateX) String() string { return fmt.Sprintf("RotateX(%d, %s)", g.Qubit, g.Theta) }
func (g RotateX) isOperation()   {}

// RotateY rotates one qubit around the Y axis by Theta radians.
type RotateY struct {
	Qubit int          `json:"qubit"`
	Theta scalar.Value `json:"theta"`
}

func (g RotateY) Kind() Kind            { return KindRotateY }
func (g RotateY) InvolvedQubits() []int { return []int{g.Qubit} }

func (g RotateY) Substitute(b scalar.Bindings) (Operation, error) {
	theta, err := substituteValue(g.Theta, b)
	if err != nil {
		return nil, err
	}

	return RotateY{Qubit: g.Qubit, Theta: theta}, nil
}

func (g RotateY) Bind(b scalar.Bindings) Operation {
	return RotateY{Qubit: g.Qubit, Theta: g.Theta.Bind(b)}
}

func (g RotateY) String() string { return fmt.Sprintf("RotateY(%d, %s)", g.Qubit, g.Theta) }
func (g RotateY) isOperation()   {}

// RotateZ rotates one qubit around the Z axis by Theta radians.
type RotateZ struct {
	Qubit int          `json:"qubit"`
	Theta scalar.Value `json:"theta"`
}

func (g RotateZ) Kind() Kind            { return KindRotateZ }
func (g RotateZ) InvolvedQubits() []int { return []int{g.Qubit} }

func (g RotateZ) Substitute(b scalar.Bindings) (Operation, error) {
	theta, err := substituteValue(g.Theta, b)
	if err != nil {
		return nil, err
	}

	return RotateZ{Qubit: g.Qubit, Theta: theta}, nil
}

func (g RotateZ) Bind(b scalar.Bindings) Operation {
	return RotateZ{Qubit: g.Qubit, Theta: g.Theta.Bind(b)}
}

func (g RotateZ) String() string { return fmt.Sprintf("RotateZ(%d, %s)", g.Qubit, g.Theta) }
func (g RotateZ) isOperation()   {}

// PhaseShift multiplies the |1> amplitude of one qubit by e^{i*Phi}.
type PhaseShift struct {
	Qubit int          `json:"qubit"`
	Phi   scalar.Value `json:"phi"`
}

func (g PhaseShift) Kind() Kind            { return KindPhaseShift }
func (g PhaseShift) InvolvedQubits() []int { return []int{g.Qubit} }

func (g PhaseShift) Substitute(b scalar.Bindings) (Operation, error) {
	phi, err := substituteValue(g.Phi, b)
	if err != nil {
		return nil, err
	}

	return PhaseShift{Qubit: g.Qubit, Phi: phi}, nil
}

func (g PhaseShift) Bind(b scalar.Bindings) Operation {
	return PhaseShift{Qubit: g.Qubit, Phi: g.Phi.Bind(b)}
}

func (g PhaseShift) String() string { return fmt.Sprintf("PhaseShift(%d, %s)", g.Qubit, g.Phi) }
func (g PhaseShift) isOperation()   {}
