package circuit

import (
	"errors"

	"github.com/quarclab/quarc/scalar"
)

var (
	// ErrUnknownOperation indicates a serialized operation whose type tag is not in the variant set.
	ErrUnknownOperation = errors.New("circuit: unknown operation type")
	// ErrNegativeQubit indicates an operation addressing a qubit below index 0.
	ErrNegativeQubit = errors.New("circuit: negative qubit index")
	// ErrBadDefinition indicates a register definition with an empty name or non-positive length.
	ErrBadDefinition = errors.New("circuit: invalid register definition")
	// ErrBadRepetitions indicates a repeated measurement with fewer than one repetition.
	ErrBadRepetitions = errors.New("circuit: repetitions must be at least 1")
)

// Kind tags one operation variant. The tag doubles as the JSON type
// discriminator, so the names below are wire format.
type Kind string

const (
	KindHadamard             Kind = "Hadamard"
	KindPauliX               Kind = "PauliX"
	KindPauliY               Kind = "PauliY"
	KindPauliZ               Kind = "PauliZ"
	KindSqrtPauliX           Kind = "SqrtPauliX"
	KindSGate                Kind = "SGate"
	KindTGate                Kind = "TGate"
	KindRotateX              Kind = "RotateX"
	KindRotateY              Kind = "RotateY"
	KindRotateZ              Kind = "RotateZ"
	KindPhaseShift           Kind = "PhaseShift"
	KindCNOT                 Kind = "CNOT"
	KindControlledPauliZ     Kind = "ControlledPauliZ"
	KindControlledPhaseShift Kind = "ControlledPhaseShift"
	KindSWAP                 Kind = "SWAP"
	KindISwap                Kind = "ISwap"
	KindToffoli              Kind = "Toffoli"

	KindDefineRegister Kind = "DefineRegister"
	KindMeasureQubit   Kind = "MeasureQubit"

	KindPragmaRepeatedMeasurement Kind = "PragmaRepeatedMeasurement"
	KindPragmaSetStateVector      Kind = "PragmaSetStateVector"
	KindPragmaGetStateVector      Kind = "PragmaGetStateVector"
	KindPragmaConditional         Kind = "PragmaConditional"
	KindPragmaDamping             Kind = "PragmaDamping"
	KindPragmaDephasing           Kind = "PragmaDephasing"
	KindPragmaDepolarising        Kind = "PragmaDepolarising"
)

// Operation is one step of a circuit. The variant set is closed: all
// implementations live in this package, and every consumer dispatches
// over the concrete types (or Kind tags) exhaustively, so adding a
// variant is a compile-visible change to each switch.
//
// Implementations are immutable values. Substitute and Bind return new
// operations and never modify their receiver.
type Operation interface {
	// Kind returns the variant tag.
	Kind() Kind
	// InvolvedQubits lists the qubits the operation addresses, in
	// declaration order, without deduplication. Operations that act on
	// classical data only return nil. A repeated measurement without an
	// explicit qubit mapping returns nil: the backend resolves its span
	// at run time.
	InvolvedQubits() []int
	// Substitute evaluates every symbolic parameter against b and
	// returns a fully concrete operation. Any evaluation failure aborts
	// with that error.
	Substitute(b scalar.Bindings) (Operation, error)
	// Bind partially substitutes symbolic parameters, keeping unbound
	// names symbolic. It never fails.
	Bind(b scalar.Bindings) Operation
	// String renders a compact single-line form for logs and diagrams.
	String() string

	// isOperation seals the variant set.
	isOperation()
}

// substituteValue is the shared helper behind the parameterized gates.
func substituteValue(v scalar.Value, b scalar.Bindings) (scalar.Value, error) {
	f, err := v.Evaluate(b)
	if err != nil {
		return scalar.Value{}, err
	}

	return scalar.Float(f), nil
}
