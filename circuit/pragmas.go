package circuit

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/quarclab/quarc/scalar"
)

// Pragmas are operations outside the pure gate model: measurement
// batching, simulator state access, classical control flow, and noise.

// PragmaRepeatedMeasurement requests Repetitions independent full-register
// projective measurements of the state at this point, with no gates in
// between. QubitMapping sends qubit q to readout slot QubitMapping[q]; a
// nil mapping measures qubit q into slot q for every declared slot.
type PragmaRepeatedMeasurement struct {
	Readout      string      `json:"readout"`
	Repetitions  int         `json:"repetitions"`
	QubitMapping map[int]int `json:"qubit_mapping,omitempty"`
}

func (p PragmaRepeatedMeasurement) Kind() Kind { return KindPragmaRepeatedMeasurement }

// InvolvedQubits lists the mapped qubits sorted, or nil when the mapping
// is implicit and the span is resolved by the backend.
func (p PragmaRepeatedMeasurement) InvolvedQubits() []int {
	if len(p.QubitMapping) == 0 {
		return nil
	}
	qs := make([]int, 0, len(p.QubitMapping))
	for q := range p.QubitMapping {
		qs = append(qs, q)
	}
	sort.Ints(qs)

	return qs
}

func (p PragmaRepeatedMeasurement) Substitute(scalar.Bindings) (Operation, error) { return p, nil }
func (p PragmaRepeatedMeasurement) Bind(scalar.Bindings) Operation                { return p }

func (p PragmaRepeatedMeasurement) String() string {
	return fmt.Sprintf("PragmaRepeatedMeasurement(%s, n=%d)", p.Readout, p.Repetitions)
}
func (p PragmaRepeatedMeasurement) isOperation() {}

// PragmaSetStateVector replaces the full quantum state with the given
// amplitudes. Only simulators can honor it; the amplitude count must be a
// power of two.
type PragmaSetStateVector struct {
	Amplitudes []complex128
}

func (p PragmaSetStateVector) Kind() Kind { return KindPragmaSetStateVector }

// InvolvedQubits derives the addressed qubits from the amplitude count:
// 2^n amplitudes span qubits 0..n-1.
func (p PragmaSetStateVector) InvolvedQubits() []int {
	if len(p.Amplitudes) < 2 {
		return nil
	}
	n := bits.Len(uint(len(p.Amplitudes))) - 1
	qs := make([]int, n)
	for i := range qs {
		qs[i] = i
	}

	return qs
}

func (p PragmaSetStateVector) Substitute(scalar.Bindings) (Operation, error) { return p, nil }
func (p PragmaSetStateVector) Bind(scalar.Bindings) Operation                { return p }

func (p PragmaSetStateVector) String() string {
	return fmt.Sprintf("PragmaSetStateVector(%d amplitudes)", len(p.Amplitudes))
}
func (p PragmaSetStateVector) isOperation() {}

// PragmaGetStateVector snapshots the full state into a complex register.
// When Rotation is non-nil it is applied to a scratch copy first, leaving
// the live state untouched. Only simulators can honor it.
type PragmaGetStateVector struct {
	Readout  string   `json:"readout"`
	Rotation *Circuit `json:"rotation,omitempty"`
}

func (p PragmaGetStateVector) Kind() Kind { return KindPragmaGetStateVector }

// InvolvedQubits reports the rotation circuit's qubits; the snapshot
// itself spans whatever state the backend holds.
func (p PragmaGetStateVector) InvolvedQubits() []int {
	if p.Rotation == nil {
		return nil
	}

	return p.Rotation.InvolvedQubits()
}

func (p PragmaGetStateVector) Substitute(b scalar.Bindings) (Operation, error) {
	if p.Rotation == nil {
		return p, nil
	}
	rot, err := p.Rotation.Substitute(b)
	if err != nil {
		return nil, err
	}

	return PragmaGetStateVector{Readout: p.Readout, Rotation: &rot}, nil
}

func (p PragmaGetStateVector) Bind(b scalar.Bindings) Operation {
	if p.Rotation == nil {
		return p
	}
	rot := p.Rotation.Bind(b)

	return PragmaGetStateVector{Readout: p.Readout, Rotation: &rot}
}

func (p PragmaGetStateVector) String() string {
	return fmt.Sprintf("PragmaGetStateVector(%s)", p.Readout)
}
func (p PragmaGetStateVector) isOperation() {}

// PragmaConditional executes Body when classical bit Register[Bit] is
// true and skips it otherwise. Bodies nest without bound.
type PragmaConditional struct {
	Register string  `json:"register"`
	Bit      int     `json:"bit"`
	Body     Circuit `json:"body"`
}

func (p PragmaConditional) Kind() Kind            { return KindPragmaConditional }
func (p PragmaConditional) InvolvedQubits() []int { return p.Body.InvolvedQubits() }

func (p PragmaConditional) Substitute(b scalar.Bindings) (Operation, error) {
	body, err := p.Body.Substitute(b)
	if err != nil {
		return nil, err
	}

	return PragmaConditional{Register: p.Register, Bit: p.Bit, Body: body}, nil
}

func (p PragmaConditional) Bind(b scalar.Bindings) Operation {
	return PragmaConditional{Register: p.Register, Bit: p.Bit, Body: p.Body.Bind(b)}
}

func (p PragmaConditional) String() string {
	return fmt.Sprintf("PragmaConditional(%s[%d] ? %d ops)", p.Register, p.Bit, p.Body.Len())
}
func (p PragmaConditional) isOperation() {}

// PragmaDamping signals amplitude damping on one qubit: decay toward |0>
// with the given rate over the given gate time. Backends without a
// non-unitary execution mode must reject it.
type PragmaDamping struct {
	Qubit    int          `json:"qubit"`
	GateTime scalar.Value `json:"gate_time"`
	Rate     scalar.Value `json:"rate"`
}

func (p PragmaDamping) Kind() Kind            { return KindPragmaDamping }
func (p PragmaDamping) InvolvedQubits() []int { return []int{p.Qubit} }

func (p PragmaDamping) Substitute(b scalar.Bindings) (Operation, error) {
	gt, err := substituteValue(p.GateTime, b)
	if err != nil {
		return nil, err
	}
	rate, err := substituteValue(p.Rate, b)
	if err != nil {
		return nil, err
	}

	return PragmaDamping{Qubit: p.Qubit, GateTime: gt, Rate: rate}, nil
}

func (p PragmaDamping) Bind(b scalar.Bindings) Operation {
	return PragmaDamping{Qubit: p.Qubit, GateTime: p.GateTime.Bind(b), Rate: p.Rate.Bind(b)}
}

func (p PragmaDamping) String() string {
	return fmt.Sprintf("PragmaDamping(%d, t=%s, rate=%s)", p.Qubit, p.GateTime, p.Rate)
}
func (p PragmaDamping) isOperation() {}

// PragmaDephasing signals pure dephasing on one qubit: phase coherence
// decays with the given rate over the given gate time.
type PragmaDephasing struct {
	Qubit    int          `json:"qubit"`
	GateTime scalar.Value `json:"gate_time"`
	Rate     scalar.Value `json:"rate"`
}

func (p PragmaDephasing) Kind() Kind            { return KindPragmaDephasing }
func (p PragmaDephasing) InvolvedQubits() []int { return []int{p.Qubit} }

func (p PragmaDephasing) Substitute(b scalar.Bindings) (Operation, error) {
	gt, err := substituteValue(p.GateTime, b)
	if err != nil {
		return nil, err
	}
	rate, err := substituteValue(p.Rate, b)
	if err != nil {
		return nil, err
	}

	return PragmaDephasing{Qubit: p.Qubit, GateTime: gt, Rate: rate}, nil
}

func (p PragmaDephasing) Bind(b scalar.Bindings) Operation {
	return PragmaDephasing{Qubit: p.Qubit, GateTime: p.GateTime.Bind(b), Rate: p.Rate.Bind(b)}
}

func (p PragmaDephasing) String() string {
	return fmt.Sprintf("PragmaDephasing(%d, t=%s, rate=%s)", p.Qubit, p.GateTime, p.Rate)
}
func (p PragmaDephasing) isOperation() {}

// PragmaDepolarising signals symmetric depolarising noise on one qubit.
type PragmaDepolarising struct {
	Qubit    int          `json:"qubit"`
	GateTime scalar.Value `json:"gate_time"`
	Rate     scalar.Value `json:"rate"`
}

func (p PragmaDepolarising) Kind() Kind            { return KindPragmaDepolarising }
func (p PragmaDepolarising) InvolvedQubits() []int { return []int{p.Qubit} }

func (p PragmaDepolarising) Substitute(b scalar.Bindings) (Operation, error) {
	gt, err := substituteValue(p.GateTime, b)
	if err != nil {
		return nil, err
	}
	rate, err := substituteValue(p.Rate, b)
	if err != nil {
		return nil, err
	}

	return PragmaDepolarising{Qubit: p.Qubit, GateTime: gt, Rate: rate}, nil
}

func (p PragmaDepolarising) Bind(b scalar.Bindings) Operation {
	return PragmaDepolarising{Qubit: p.Qubit, GateTime: p.GateTime.Bind(b), Rate: p.Rate.Bind(b)}
}

func (p PragmaDepolarising) String() string {
	return fmt.Sprintf("PragmaDepolarising(%d, t=%s, rate=%s)", p.Qubit, p.GateTime, p.Rate)
}
func (p PragmaDepolarising) isOperation() {}
