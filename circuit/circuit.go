package circuit

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/quarclab/quarc/scalar"
)

// Circuit is an ordered sequence of operations with value semantics:
// Append grows the receiver in place, everything else returns new
// circuits and leaves the inputs untouched. The zero Circuit is empty
// and ready to use.
type Circuit struct {
	ops []Operation
}

// New builds a circuit from the given operations in order.
func New(ops ...Operation) Circuit {
	c := Circuit{}
	c.Append(ops...)

	return c
}

// Append adds operations to the end of the circuit, preserving order.
// Amortized O(1) per operation.
func (c *Circuit) Append(ops ...Operation) {
	c.ops = append(c.ops, ops...)
}

// Concatenate returns a new circuit holding the receiver's operations
// followed by other's. Neither input is modified, and later appends to
// any of the three circuits stay invisible to the other two.
// Concatenation is associative: a.Concatenate(b).Concatenate(c) equals
// a.Concatenate(b.Concatenate(c)).
func (c Circuit) Concatenate(other Circuit) Circuit {
	joined := make([]Operation, 0, len(c.ops)+len(other.ops))
	joined = append(joined, c.ops...)
	joined = append(joined, other.ops...)

	return Circuit{ops: joined}
}

// Substitute evaluates every symbolic parameter in the circuit against b
// and returns a fully concrete copy. The replacement is all-or-nothing:
// on any failure the zero Circuit and the error are returned, and the
// receiver is never modified. Conditional bodies and state-vector
// rotation circuits are substituted recursively.
func (c Circuit) Substitute(b scalar.Bindings) (Circuit, error) {
	out := make([]Operation, len(c.ops))
	for i, op := range c.ops {
		sub, err := op.Substitute(b)
		if err != nil {
			return Circuit{}, fmt.Errorf("circuit: substitute operation %d (%s): %w", i, op.Kind(), err)
		}
		out[i] = sub
	}

	return Circuit{ops: out}, nil
}

// Bind partially substitutes symbolic parameters: bound names become
// numbers, unbound names stay symbolic. It never fails.
func (c Circuit) Bind(b scalar.Bindings) Circuit {
	out := make([]Operation, len(c.ops))
	for i, op := range c.ops {
		out[i] = op.Bind(b)
	}

	return Circuit{ops: out}
}

// Len returns the number of top-level operations.
func (c Circuit) Len() int { return len(c.ops) }

// Operations returns a copy of the top-level operation sequence.
func (c Circuit) Operations() []Operation {
	return append([]Operation(nil), c.ops...)
}

// walk visits every operation depth-first, descending into conditional
// bodies and state-vector rotation circuits.
func (c Circuit) walk(fn func(Operation)) {
	for _, op := range c.ops {
		fn(op)
		switch o := op.(type) {
		case PragmaConditional:
			o.Body.walk(fn)
		case PragmaGetStateVector:
			if o.Rotation != nil {
				o.Rotation.walk(fn)
			}
		}
	}
}

// OperationKinds returns the distinct kind tags present anywhere in the
// circuit, including nested bodies, sorted. Backends use it to refuse
// circuits they cannot execute before touching any state.
func (c Circuit) OperationKinds() []Kind {
	seen := make(map[Kind]struct{})
	c.walk(func(op Operation) { seen[op.Kind()] = struct{}{} })
	kinds := make([]Kind, 0, len(seen))
	for k := range seen {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	return kinds
}

// InvolvedQubits returns the distinct qubit indices addressed anywhere in
// the circuit, sorted ascending.
func (c Circuit) InvolvedQubits() []int {
	seen := make(map[int]struct{})
	c.walk(func(op Operation) {
		for _, q := range op.InvolvedQubits() {
			seen[q] = struct{}{}
		}
	})
	qs := make([]int, 0, len(seen))
	for q := range seen {
		qs = append(qs, q)
	}
	sort.Ints(qs)

	return qs
}

// QubitCount returns the smallest register size able to hold the circuit:
// the maximum involved index plus one, or 0 for a circuit that addresses
// no qubits.
func (c Circuit) QubitCount() int {
	maxIdx := -1
	c.walk(func(op Operation) {
		for _, q := range op.InvolvedQubits() {
			if q > maxIdx {
				maxIdx = q
			}
		}
	})

	return maxIdx + 1
}

// Definitions returns every register definition in the circuit, nested
// ones included, in execution order.
func (c Circuit) Definitions() []DefineRegister {
	var defs []DefineRegister
	c.walk(func(op Operation) {
		if d, ok := op.(DefineRegister); ok {
			defs = append(defs, d)
		}
	})

	return defs
}

// Variables returns the distinct free parameter names referenced anywhere
// in the circuit, sorted.
func (c Circuit) Variables() []string {
	seen := make(map[string]struct{})
	c.walk(func(op Operation) {
		for _, v := range operationValues(op) {
			for _, name := range v.Variables() {
				seen[name] = struct{}{}
			}
		}
	})
	if len(seen) == 0 {
		return nil
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// IsParameterized reports whether any parameter in the circuit is still
// symbolic.
func (c Circuit) IsParameterized() bool {
	param := false
	c.walk(func(op Operation) {
		for _, v := range operationValues(op) {
			if v.IsSymbolic() {
				param = true
			}
		}
	})

	return param
}

// operationValues lists the scalar parameters carried directly by one
// operation. Nested circuits are handled by walk, not here.
func operationValues(op Operation) []scalar.Value {
	switch o := op.(type) {
	case RotateX:
		return []scalar.Value{o.Theta}
	case RotateY:
		return []scalar.Value{o.Theta}
	case RotateZ:
		return []scalar.Value{o.Theta}
	case PhaseShift:
		return []scalar.Value{o.Phi}
	case ControlledPhaseShift:
		return []scalar.Value{o.Phi}
	case PragmaDamping:
		return []scalar.Value{o.GateTime, o.Rate}
	case PragmaDephasing:
		return []scalar.Value{o.GateTime, o.Rate}
	case PragmaDepolarising:
		return []scalar.Value{o.GateTime, o.Rate}
	default:
		return nil
	}
}

// Validate eagerly checks structural invariants: non-negative qubit
// indices, well-formed register definitions, and positive repetition
// counts. Backends run it before allocating any state.
func (c Circuit) Validate() error {
	var err error
	c.walk(func(op Operation) {
		if err != nil {
			return
		}
		for _, q := range op.InvolvedQubits() {
			if q < 0 {
				err = fmt.Errorf("%w: %s", ErrNegativeQubit, op)

				return
			}
		}
		switch o := op.(type) {
		case DefineRegister:
			if o.Name == "" || o.Length < 1 {
				err = fmt.Errorf("%w: %s", ErrBadDefinition, o)
			}
		case MeasureQubit:
			if o.ReadoutIndex < 0 {
				err = fmt.Errorf("%w: %s", ErrNegativeQubit, o)
			}
		case PragmaRepeatedMeasurement:
			if o.Repetitions < 1 {
				err = fmt.Errorf("%w: %s", ErrBadRepetitions, o)
			}
		case PragmaConditional:
			if o.Bit < 0 {
				err = fmt.Errorf("%w: %s", ErrNegativeQubit, o)
			}
		}
	})

	return err
}

// Equal reports structural equality: same operations in the same order,
// with parameters compared by representation (see scalar.Value.Equal).
func (c Circuit) Equal(other Circuit) bool {
	if len(c.ops) != len(other.ops) {
		return false
	}
	if len(c.ops) == 0 {
		return true
	}

	return reflect.DeepEqual(c.ops, other.ops)
}

// String renders the circuit one operation per line, in execution order.
func (c Circuit) String() string {
	var sb strings.Builder
	for i, op := range c.ops {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(op.String())
	}

	return sb.String()
}
