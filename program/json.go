package program

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quarclab/quarc/circuit"
	"github.com/quarclab/quarc/measurement"
)

// schemaVersion tags the wire form. Bump it when the layout changes;
// decoding rejects any tag it does not know instead of guessing.
const schemaVersion = "1"

// ErrBadVersion indicates a serialized program with an unknown schema version tag.
var ErrBadVersion = errors.New("program: unsupported schema version")

// Wire format: version tag, circuits in execution order, the measurement
// descriptor, and parameter names in binding order. Symbolic expressions
// ride along verbatim inside the circuit encoding, so a parameterized
// program round-trips to an observationally equivalent one.

type programJSON struct {
	Version     string                    `json:"version"`
	Circuits    []circuit.Circuit         `json:"circuits"`
	Measurement measurement.PauliZProduct `json:"measurement"`
	Parameters  []string                  `json:"parameter_names"`
}

// MarshalJSON encodes the program under the current schema version.
func (p *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(programJSON{
		Version:     schemaVersion,
		Circuits:    p.circuits,
		Measurement: p.meas,
		Parameters:  p.params,
	})
}

// UnmarshalJSON decodes a program produced by MarshalJSON. The decoded
// parts pass through New, so a wire form violating construction
// invariants (undeclared parameters, duplicate names) is rejected
// exactly like a bad New call.
func (p *Program) UnmarshalJSON(data []byte) error {
	var wire programJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("program: decode: %w", err)
	}
	if wire.Version != schemaVersion {
		return fmt.Errorf("%w: %q", ErrBadVersion, wire.Version)
	}
	rebuilt, err := New(wire.Measurement, wire.Circuits, wire.Parameters)
	if err != nil {
		return fmt.Errorf("program: decode: %w", err)
	}
	*p = *rebuilt

	return nil
}
