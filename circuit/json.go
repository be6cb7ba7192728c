package circuit

import (
	"encoding/json"
	"fmt"
)

// Wire format: a circuit is a JSON array of {"type": <Kind>, "op": {...}}
// envelopes in execution order. Symbolic parameters ride along as their
// expression strings (see scalar.Value), so a parameterized circuit
// round-trips without losing its free names.

type envelope struct {
	Type Kind            `json:"type"`
	Op   json.RawMessage `json:"op"`
}

// MarshalJSON encodes the circuit as an ordered envelope array.
func (c Circuit) MarshalJSON() ([]byte, error) {
	envs := make([]envelope, len(c.ops))
	for i, op := range c.ops {
		payload, err := json.Marshal(op)
		if err != nil {
			return nil, fmt.Errorf("circuit: encode operation %d (%s): %w", i, op.Kind(), err)
		}
		envs[i] = envelope{Type: op.Kind(), Op: payload}
	}

	return json.Marshal(envs)
}

// UnmarshalJSON decodes an envelope array produced by MarshalJSON. An
// envelope whose type tag is outside the variant set fails with
// ErrUnknownOperation; nothing is silently skipped.
func (c *Circuit) UnmarshalJSON(data []byte) error {
	var envs []envelope
	if err := json.Unmarshal(data, &envs); err != nil {
		return fmt.Errorf("circuit: decode: %w", err)
	}
	ops := make([]Operation, len(envs))
	for i, env := range envs {
		op, err := decodeOperation(env)
		if err != nil {
			return fmt.Errorf("circuit: decode operation %d: %w", i, err)
		}
		ops[i] = op
	}
	*c = Circuit{ops: ops}

	return nil
}

// decodeAs unmarshals an envelope payload into one concrete variant.
func decodeAs[T Operation](raw json.RawMessage) (Operation, error) {
	var op T
	if err := json.Unmarshal(raw, &op); err != nil {
		return nil, err
	}

	return op, nil
}

// decodeOperation dispatches on the type tag. The switch is exhaustive
// over the variant set; extending the set without extending it here is a
// decode failure, not a silent gap.
func decodeOperation(env envelope) (Operation, error) {
	switch env.Type {
	case KindHadamard:
		return decodeAs[Hadamard](env.Op)
	case KindPauliX:
		return decodeAs[PauliX](env.Op)
	case KindPauliY:
		return decodeAs[PauliY](env.Op)
	case KindPauliZ:
		return decodeAs[PauliZ](env.Op)
	case KindSqrtPauliX:
		return decodeAs[SqrtPauliX](env.Op)
	case KindSGate:
		return decodeAs[SGate](env.Op)
	case KindTGate:
		return decodeAs[TGate](env.Op)
	case KindRotateX:
		return decodeAs[RotateX](env.Op)
	case KindRotateY:
		return decodeAs[RotateY](env.Op)
	case KindRotateZ:
		return decodeAs[RotateZ](env.Op)
	case KindPhaseShift:
		return decodeAs[PhaseShift](env.Op)
	case KindCNOT:
		return decodeAs[CNOT](env.Op)
	case KindControlledPauliZ:
		return decodeAs[ControlledPauliZ](env.Op)
	case KindControlledPhaseShift:
		return decodeAs[ControlledPhaseShift](env.Op)
	case KindSWAP:
		return decodeAs[SWAP](env.Op)
	case KindISwap:
		return decodeAs[ISwap](env.Op)
	case KindToffoli:
		return decodeAs[Toffoli](env.Op)
	case KindDefineRegister:
		return decodeAs[DefineRegister](env.Op)
	case KindMeasureQubit:
		return decodeAs[MeasureQubit](env.Op)
	case KindPragmaRepeatedMeasurement:
		return decodeAs[PragmaRepeatedMeasurement](env.Op)
	case KindPragmaSetStateVector:
		return decodeAs[PragmaSetStateVector](env.Op)
	case KindPragmaGetStateVector:
		return decodeAs[PragmaGetStateVector](env.Op)
	case KindPragmaConditional:
		return decodeAs[PragmaConditional](env.Op)
	case KindPragmaDamping:
		return decodeAs[PragmaDamping](env.Op)
	case KindPragmaDephasing:
		return decodeAs[PragmaDephasing](env.Op)
	case KindPragmaDepolarising:
		return decodeAs[PragmaDepolarising](env.Op)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, env.Type)
	}
}

// setStateVectorJSON is the wire shape of PragmaSetStateVector: each
// amplitude as a [real, imaginary] pair, since JSON has no complex type.
type setStateVectorJSON struct {
	Amplitudes [][2]float64 `json:"amplitudes"`
}

// MarshalJSON encodes the amplitudes as [re, im] pairs.
func (p PragmaSetStateVector) MarshalJSON() ([]byte, error) {
	pairs := make([][2]float64, len(p.Amplitudes))
	for i, a := range p.Amplitudes {
		pairs[i] = [2]float64{real(a), imag(a)}
	}

	return json.Marshal(setStateVectorJSON{Amplitudes: pairs})
}

// UnmarshalJSON decodes [re, im] pairs back into complex amplitudes.
func (p *PragmaSetStateVector) UnmarshalJSON(data []byte) error {
	var wire setStateVectorJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	amps := make([]complex128, len(wire.Amplitudes))
	for i, pair := range wire.Amplitudes {
		amps[i] = complex(pair[0], pair[1])
	}
	*p = PragmaSetStateVector{Amplitudes: amps}

	return nil
}
