// Package backend_test checks the error wrapper's sentinel transparency.
package backend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quarclab/quarc/backend"
	"github.com/quarclab/quarc/circuit"
)

// TestSimulationError_Unwraps verifies errors.Is reaches the sentinel
// through the wrapper and the message carries backend and operation.
func TestSimulationError_Unwraps(t *testing.T) {
	err := &backend.SimulationError{
		Backend: "statevector",
		Op:      circuit.KindPragmaSetStateVector,
		Err:     backend.ErrUnsupportedOperation,
	}
	assert.ErrorIs(t, err, backend.ErrUnsupportedOperation, "sentinel must match through the wrapper")
	assert.Contains(t, err.Error(), "statevector", "message names the backend")
	assert.Contains(t, err.Error(), "PragmaSetStateVector", "message names the operation")

	bare := &backend.SimulationError{Backend: "statevector", Err: backend.ErrInvalidState}
	assert.Contains(t, bare.Error(), "invalid quantum state", "op-less form still renders the cause")
}
