package program

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/quarclab/quarc/backend"
	"github.com/quarclab/quarc/circuit"
	"github.com/quarclab/quarc/measurement"
	"github.com/quarclab/quarc/registers"
	"github.com/quarclab/quarc/scalar"
)

var (
	// ErrArityMismatch indicates Run received a value count different from the declared parameter count.
	ErrArityMismatch = errors.New("program: parameter arity mismatch")
	// ErrUndeclaredParameter indicates a circuit referencing a free name outside the declared list.
	ErrUndeclaredParameter = errors.New("program: undeclared parameter")
	// ErrDuplicateParameter indicates the same name declared twice.
	ErrDuplicateParameter = errors.New("program: duplicate parameter name")
)

// ArityMismatchError reports the declared and provided value counts.
// Matches ErrArityMismatch under errors.Is.
type ArityMismatchError struct {
	Want int // declared parameter count
	Got  int // provided value count
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("program: expected %d parameter values, got %d", e.Want, e.Got)
}

// Is reports target == ErrArityMismatch.
func (e *ArityMismatchError) Is(target error) bool { return target == ErrArityMismatch }

// UndeclaredParameterError names the free parameter no declaration covers.
// Matches ErrUndeclaredParameter under errors.Is.
type UndeclaredParameterError struct {
	Name string
}

func (e *UndeclaredParameterError) Error() string {
	return fmt.Sprintf("program: circuit references undeclared parameter %q", e.Name)
}

// Is reports target == ErrUndeclaredParameter.
func (e *UndeclaredParameterError) Is(target error) bool { return target == ErrUndeclaredParameter }

// Program is an immutable bundle of circuits, a measurement descriptor,
// and ordered free parameter names. Construct with New; a Program is safe
// for concurrent Run calls.
type Program struct {
	circuits []circuit.Circuit
	meas     measurement.PauliZProduct
	params   []string
}

// New validates and assembles a program. Every free name referenced by
// any circuit must appear in params; params may also carry extra names
// that no circuit uses (see UnusedParameters). Duplicate names fail with
// ErrDuplicateParameter, foreign references with *UndeclaredParameterError.
func New(m measurement.PauliZProduct, circuits []circuit.Circuit, params []string) (*Program, error) {
	declared := make(map[string]struct{}, len(params))
	for _, name := range params {
		if _, dup := declared[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateParameter, name)
		}
		declared[name] = struct{}{}
	}
	for i, c := range circuits {
		for _, name := range c.Variables() {
			if _, ok := declared[name]; !ok {
				return nil, fmt.Errorf("circuit %d: %w", i, &UndeclaredParameterError{Name: name})
			}
		}
	}

	return &Program{
		circuits: append([]circuit.Circuit(nil), circuits...),
		meas:     m.Clone(),
		params:   append([]string(nil), params...),
	}, nil
}

// Run executes the program at one parameter point: values are bound to
// the declared names positionally, every circuit is substituted to its
// concrete form and executed, the register spaces pool in circuit order,
// and the measurement descriptor maps the pooled rows to named outputs.
//
// The arity check runs before anything touches the backend, so a wrong
// value count costs no quantum time. Backend errors return with circuit
// context attached and the cause intact.
func (p *Program) Run(ctx context.Context, b backend.Backend, values []float64) (map[string]float64, error) {
	space, err := p.RunRegisters(ctx, b, values)
	if err != nil {
		return nil, err
	}

	return p.meas.Evaluate(space)
}

// RunRegisters executes the program like Run but returns the pooled raw
// registers instead of evaluating the descriptor. Use it to inspect
// per-shot records, for readout modes the parity estimator does not
// cover.
func (p *Program) RunRegisters(ctx context.Context, b backend.Backend, values []float64) (registers.Space, error) {
	if len(values) != len(p.params) {
		return registers.Space{}, &ArityMismatchError{Want: len(p.params), Got: len(values)}
	}
	bindings := make(scalar.Bindings, len(p.params))
	for i, name := range p.params {
		bindings[name] = values[i]
	}

	pooled := registers.NewSpace()
	for i, c := range p.circuits {
		if err := ctx.Err(); err != nil {
			return registers.Space{}, fmt.Errorf("program: circuit %d: %w", i, err)
		}
		bound, err := c.Substitute(bindings)
		if err != nil {
			return registers.Space{}, fmt.Errorf("program: circuit %d: %w", i, err)
		}
		space, err := b.RunCircuit(ctx, bound)
		if err != nil {
			return registers.Space{}, fmt.Errorf("program: circuit %d: %w", i, err)
		}
		pooled = pooled.Merge(space)
	}

	return pooled, nil
}

// Circuits returns a copy of the circuit sequence.
func (p *Program) Circuits() []circuit.Circuit {
	return append([]circuit.Circuit(nil), p.circuits...)
}

// ParameterNames returns a copy of the declared names in binding order.
func (p *Program) ParameterNames() []string {
	return append([]string(nil), p.params...)
}

// Measurement returns an independent copy of the descriptor.
func (p *Program) Measurement() measurement.PauliZProduct {
	return p.meas.Clone()
}

// UnusedParameters lists declared names no circuit references, sorted.
// A non-empty result is legal; callers that consider it a mistake can
// warn or reject on their side.
func (p *Program) UnusedParameters() []string {
	used := make(map[string]struct{})
	for _, c := range p.circuits {
		for _, name := range c.Variables() {
			used[name] = struct{}{}
		}
	}
	var unused []string
	for _, name := range p.params {
		if _, ok := used[name]; !ok {
			unused = append(unused, name)
		}
	}
	sort.Strings(unused)

	return unused
}
