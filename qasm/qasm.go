package qasm

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/quarclab/quarc/circuit"
	"github.com/quarclab/quarc/registers"
	"github.com/quarclab/quarc/scalar"
)

// ErrUnboundCircuit indicates an export attempt on a circuit that still
// carries free parameters; QASM 2.0 has no symbols to hold them.
var ErrUnboundCircuit = errors.New("qasm: circuit still has free parameters")

// Export renders the circuit as an OpenQASM 2.0 program. The circuit
// must be fully bound and structurally valid.
func Export(c circuit.Circuit) (string, error) {
	if c.IsParameterized() {
		return "", fmt.Errorf("%w: %v", ErrUnboundCircuit, c.Variables())
	}
	if err := c.Validate(); err != nil {
		return "", err
	}

	qubits := c.QubitCount()
	if qubits < 1 {
		qubits = 1
	}

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n")
	writeLocalGates(&sb, c)
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "qreg q[%d];\n", qubits)
	for _, def := range c.Definitions() {
		if def.Element == registers.Bit {
			fmt.Fprintf(&sb, "creg %s[%d];\n", def.Name, def.Length)
		} else {
			// QASM 2.0 only has bit storage.
			fmt.Fprintf(&sb, "// register %s: %s[%d]\n", def.Name, def.Element, def.Length)
		}
	}
	sb.WriteByte('\n')

	writeOps(&sb, c.Operations(), "", qubits)

	return sb.String(), nil
}

// writeLocalGates emits definitions for the gates qelib1 does not carry,
// only when the circuit uses them.
func writeLocalGates(sb *strings.Builder, c circuit.Circuit) {
	for _, kind := range c.OperationKinds() {
		switch kind {
		case circuit.KindSqrtPauliX:
			sb.WriteString("gate sx a { sdg a; h a; sdg a; }\n")
		case circuit.KindISwap:
			sb.WriteString("gate iswap a,b { s a; s b; h a; cx a,b; cx b,a; h b; }\n")
		}
	}
}

// writeOps lowers operations in order. prefix carries the conditional
// if-form; QASM 2.0 cannot stack them, so a nested conditional keeps only
// its own condition behind an explanatory comment.
func writeOps(sb *strings.Builder, ops []circuit.Operation, prefix string, qubits int) {
	for _, op := range ops {
		switch o := op.(type) {
		case circuit.Hadamard:
			fmt.Fprintf(sb, "%sh q[%d];\n", prefix, o.Qubit)
		case circuit.PauliX:
			fmt.Fprintf(sb, "%sx q[%d];\n", prefix, o.Qubit)
		case circuit.PauliY:
			fmt.Fprintf(sb, "%sy q[%d];\n", prefix, o.Qubit)
		case circuit.PauliZ:
			fmt.Fprintf(sb, "%sz q[%d];\n", prefix, o.Qubit)
		case circuit.SqrtPauliX:
			fmt.Fprintf(sb, "%ssx q[%d];\n", prefix, o.Qubit)
		case circuit.SGate:
			fmt.Fprintf(sb, "%ss q[%d];\n", prefix, o.Qubit)
		case circuit.TGate:
			fmt.Fprintf(sb, "%st q[%d];\n", prefix, o.Qubit)
		case circuit.RotateX:
			fmt.Fprintf(sb, "%srx(%s) q[%d];\n", prefix, formatParam(o.Theta), o.Qubit)
		case circuit.RotateY:
			fmt.Fprintf(sb, "%sry(%s) q[%d];\n", prefix, formatParam(o.Theta), o.Qubit)
		case circuit.RotateZ:
			fmt.Fprintf(sb, "%srz(%s) q[%d];\n", prefix, formatParam(o.Theta), o.Qubit)
		case circuit.PhaseShift:
			fmt.Fprintf(sb, "%su1(%s) q[%d];\n", prefix, formatParam(o.Phi), o.Qubit)
		case circuit.CNOT:
			fmt.Fprintf(sb, "%scx q[%d], q[%d];\n", prefix, o.Control, o.Target)
		case circuit.ControlledPauliZ:
			fmt.Fprintf(sb, "%scz q[%d], q[%d];\n", prefix, o.Control, o.Target)
		case circuit.ControlledPhaseShift:
			fmt.Fprintf(sb, "%scu1(%s) q[%d], q[%d];\n", prefix, formatParam(o.Phi), o.Control, o.Target)
		case circuit.SWAP:
			fmt.Fprintf(sb, "%sswap q[%d], q[%d];\n", prefix, o.Qubit0, o.Qubit1)
		case circuit.ISwap:
			fmt.Fprintf(sb, "%siswap q[%d], q[%d];\n", prefix, o.Qubit0, o.Qubit1)
		case circuit.Toffoli:
			fmt.Fprintf(sb, "%sccx q[%d], q[%d], q[%d];\n", prefix, o.Control0, o.Control1, o.Target)
		case circuit.DefineRegister:
			// Declared in the header.
		case circuit.MeasureQubit:
			fmt.Fprintf(sb, "%smeasure q[%d] -> %s[%d];\n", prefix, o.Qubit, o.Readout, o.ReadoutIndex)
		case circuit.PragmaRepeatedMeasurement:
			fmt.Fprintf(sb, "// pragma: repeated measurement into %s, %d shots\n", o.Readout, o.Repetitions)
			for _, q := range measuredQubits(o, qubits) {
				slot := q
				if o.QubitMapping != nil {
					slot = o.QubitMapping[q]
				}
				fmt.Fprintf(sb, "%smeasure q[%d] -> %s[%d];\n", prefix, q, o.Readout, slot)
			}
		case circuit.PragmaSetStateVector:
			fmt.Fprintf(sb, "// pragma: set statevector, %d amplitudes\n", len(o.Amplitudes))
		case circuit.PragmaGetStateVector:
			fmt.Fprintf(sb, "// pragma: get statevector into %s\n", o.Readout)
		case circuit.PragmaConditional:
			if prefix != "" {
				sb.WriteString("// pragma: nested conditional, outer condition dropped by QASM 2.0\n")
			}
			writeOps(sb, o.Body.Operations(), fmt.Sprintf("if (%s[%d]==1) ", o.Register, o.Bit), qubits)
		case circuit.PragmaDamping:
			fmt.Fprintf(sb, "// pragma: damping q[%d] rate=%s time=%s\n",
				o.Qubit, formatParam(o.Rate), formatParam(o.GateTime))
		case circuit.PragmaDephasing:
			fmt.Fprintf(sb, "// pragma: dephasing q[%d] rate=%s time=%s\n",
				o.Qubit, formatParam(o.Rate), formatParam(o.GateTime))
		case circuit.PragmaDepolarising:
			fmt.Fprintf(sb, "// pragma: depolarising q[%d] rate=%s time=%s\n",
				o.Qubit, formatParam(o.Rate), formatParam(o.GateTime))
		}
	}
}

// measuredQubits lists the qubits a repeated measurement reads, sorted:
// the mapping's keys, or every circuit qubit when the mapping is implicit.
func measuredQubits(o circuit.PragmaRepeatedMeasurement, qubits int) []int {
	if o.QubitMapping == nil {
		qs := make([]int, qubits)
		for i := range qs {
			qs[i] = i
		}

		return qs
	}
	qs := make([]int, 0, len(o.QubitMapping))
	for q := range o.QubitMapping {
		qs = append(qs, q)
	}
	sort.Ints(qs)

	return qs
}

// piForms are the angle spellings preferred over raw decimals.
var piForms = []struct {
	value   float64
	display string
}{
	{2 * math.Pi, "2*pi"},
	{math.Pi, "pi"},
	{math.Pi / 2, "pi/2"},
	{math.Pi / 3, "pi/3"},
	{math.Pi / 4, "pi/4"},
	{math.Pi / 6, "pi/6"},
	{math.Pi / 8, "pi/8"},
	{3 * math.Pi / 4, "3*pi/4"},
	{3 * math.Pi / 2, "3*pi/2"},
	{2 * math.Pi / 3, "2*pi/3"},
}

// formatParam renders a bound parameter, using pi notation for the
// common fractions.
func formatParam(v scalar.Value) string {
	f, ok := v.Float()
	if !ok {
		// Export rejects symbolic circuits up front; this is unreachable
		// for well-formed calls but renders something sensible anyway.
		return v.String()
	}
	for _, pf := range piForms {
		if math.Abs(f-pf.value) < 1e-10 {
			return pf.display
		}
		if math.Abs(f+pf.value) < 1e-10 {
			return "-" + pf.display
		}
	}

	return fmt.Sprintf("%g", f)
}
