// Package backend declares the execution contract between circuits and
// the engines that run them, plus the error taxonomy every engine speaks.
//
// A Backend is an external collaborator: local simulator, remote
// hardware, anything that can turn a fully concrete circuit into
// classical register rows. The core packages never retry, never inspect
// backend internals, and pass cancellation through the context, so the
// caller decides how long a run may take.
package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/quarclab/quarc/circuit"
	"github.com/quarclab/quarc/registers"
)

var (
	// ErrUnsupportedOperation indicates a circuit using an operation this backend cannot execute.
	ErrUnsupportedOperation = errors.New("backend: unsupported operation")
	// ErrQubitOutOfRange indicates a qubit index at or beyond the backend's capacity.
	ErrQubitOutOfRange = errors.New("backend: qubit index out of range")
	// ErrInvalidState indicates a numerically broken quantum state, such as a
	// non-normalizable vector.
	ErrInvalidState = errors.New("backend: invalid quantum state")
	// ErrRegisterClash indicates a write to an undeclared register, a slot
	// outside its length, or a register used under conflicting access patterns.
	ErrRegisterClash = errors.New("backend: register clash")
	// ErrSymbolicCircuit indicates a circuit that still carries free parameters;
	// backends only execute concrete circuits.
	ErrSymbolicCircuit = errors.New("backend: circuit still has free parameters")
)

// Backend executes one concrete circuit and returns the classical
// registers it produced. Implementations must honor ctx cancellation at
// shot granularity where feasible and must return only registers defined
// with Output set.
type Backend interface {
	RunCircuit(ctx context.Context, c circuit.Circuit) (registers.Space, error)
}

// SimulationError wraps an execution failure with the backend's name and
// the operation being executed when it happened. It unwraps to the
// underlying cause, so errors.Is against the sentinels above works
// through it.
type SimulationError struct {
	Backend string
	Op      circuit.Kind
	Err     error
}

func (e *SimulationError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("backend %s: %v", e.Backend, e.Err)
	}

	return fmt.Sprintf("backend %s: %s: %v", e.Backend, e.Op, e.Err)
}

// Unwrap exposes the cause for errors.Is and errors.As.
func (e *SimulationError) Unwrap() error { return e.Err }
