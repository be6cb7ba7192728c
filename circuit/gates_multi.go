package circuit

import (
	"fmt"

	"github.com/quarclab/quarc/scalar"
)

// Two- and three-qubit gates.

// CNOT flips Target when Control is |1>.
type CNOT struct {
	Control int `json:"control"`
	Target  int `json:"target"`
}

func (g CNOT) Kind() Kind                                    { return KindCNOT }
func (g CNOT) InvolvedQubits() []int                         { return []int{g.Control, g.Target} }
func (g CNOT) Substitute(scalar.Bindings) (Operation, error) { return g, nil }
func (g CNOT) Bind(scalar.Bindings) Operation                { return g }
func (g CNOT) String() string                                { return fmt.Sprintf("CNOT(%d, %d)", g.Control, g.Target) }
func (g CNOT) isOperation()                                  {}

// ControlledPauliZ applies Z to Target when Control is |1>. The gate is
// symmetric in its qubits; the field names only fix the printed order.
type ControlledPauliZ struct {
	Control int `json:"control"`
	Target  int `json:"target"`
}

func (g ControlledPauliZ) Kind() Kind                                    { return KindControlledPauliZ }
func (g ControlledPauliZ) InvolvedQubits() []int                         { return []int{g.Control, g.Target} }
func (g ControlledPauliZ) Substitute(scalar.Bindings) (Operation, error) { return g, nil }
func (g ControlledPauliZ) Bind(scalar.Bindings) Operation                { return g }
func (g ControlledPauliZ) String() string {
	return fmt.Sprintf("ControlledPauliZ(%d, %d)", g.Control, g.Target)
}
func (g ControlledPauliZ) isOperation() {}

// ControlledPhaseShift multiplies the |11> amplitude by e^{i*Phi}.
type ControlledPhaseShift struct {
	Control int          `json:"control"`
	Target  int          `json:"target"`
	Phi     scalar.Value `json:"phi"`
}

func (g ControlledPhaseShift) Kind() Kind            { return KindControlledPhaseShift }
func (g ControlledPhaseShift) InvolvedQubits() []int { return []int{g.Control, g.Target} }

func (g ControlledPhaseShift) Substitute(b scalar.Bindings) (Operation, error) {
	phi, err := substituteValue(g.Phi, b)
	if err != nil {
		return nil, err
	}

	return ControlledPhaseShift{Control: g.Control, Target: g.Target, Phi: phi}, nil
}

func (g ControlledPhaseShift) Bind(b scalar.Bindings) Operation {
	return ControlledPhaseShift{Control: g.Control, Target: g.Target, Phi: g.Phi.Bind(b)}
}

func (g ControlledPhaseShift) String() string {
	return fmt.Sprintf("ControlledPhaseShift(%d, %d, %s)", g.Control, g.Target, g.Phi)
}
func (g ControlledPhaseShift) isOperation() {}

// SWAP exchanges the states of two qubits.
type SWAP struct {
	Qubit0 int `json:"qubit0"`
	Qubit1 int `json:"qubit1"`
}

func (g SWAP) Kind() Kind                                    { return KindSWAP }
func (g SWAP) InvolvedQubits() []int                         { return []int{g.Qubit0, g.Qubit1} }
func (g SWAP) Substitute(scalar.Bindings) (Operation, error) { return g, nil }
func (g SWAP) Bind(scalar.Bindings) Operation                { return g }
func (g SWAP) String() string                                { return fmt.Sprintf("SWAP(%d, %d)", g.Qubit0, g.Qubit1) }
func (g SWAP) isOperation()                                  {}

// ISwap exchanges two qubits and phases the swapped amplitudes by i.
type ISwap struct {
	Qubit0 int `json:"qubit0"`
	Qubit1 int `json:"qubit1"`
}

func (g ISwap) Kind() Kind                                    { return KindISwap }
func (g ISwap) InvolvedQubits() []int                         { return []int{g.Qubit0, g.Qubit1} }
func (g ISwap) Substitute(scalar.Bindings) (Operation, error) { return g, nil }
func (g ISwap) Bind(scalar.Bindings) Operation                { return g }
func (g ISwap) String() string                                { return fmt.Sprintf("ISwap(%d, %d)", g.Qubit0, g.Qubit1) }
func (g ISwap) isOperation()                                  {}

// Toffoli flips Target when both controls are |1>.
type Toffoli struct {
	Control0 int `json:"control0"`
	Control1 int `json:"control1"`
	Target   int `json:"target"`
}

func (g Toffoli) Kind() Kind            { return KindToffoli }
func (g Toffoli) InvolvedQubits() []int { return []int{g.Control0, g.Control1, g.Target} }
func (g Toffoli) Substitute(scalar.Bindings) (Operation, error) {
	return g, nil
}
func (g Toffoli) Bind(scalar.Bindings) Operation { return g }
func (g Toffoli) String() string {
	return fmt.Sprintf("Toffoli(%d, %d, %d)", g.Control0, g.Control1, g.Target)
}
func (g Toffoli) isOperation() {}
