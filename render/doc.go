// Package render draws circuits as Unicode wire diagrams for terminals
// and logs.
//
// One row per qubit, one column per operation: gates sit in boxes on
// their wire, controls are ●, CNOT and Toffoli targets ⊕, swaps ×, and
// measurements M. A column touching several qubits marks the wires it
// crosses with ┼. Register definitions head the diagram, and conditional
// bodies follow it as indented sub-diagrams labeled with their condition,
// so nesting stays readable at any depth.
//
//	ro: Bit[2] output
//	q0: ─┤H├──●──M→ro─
//	q1: ──────⊕──M→ro─
//
// Output is plain text by default, safe to pipe or diff; WithColor(true)
// opts into ANSI styling. Drawing is a pure function of the circuit
// value and never fails: the operation set is closed, so there is no
// unknown-op case to skip.
package render
