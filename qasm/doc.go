// Package qasm exports circuits as OpenQASM 2.0 text.
//
// The export is one-way glue for interoperability: gates lower to their
// qelib1 names (with local gate definitions emitted for the two gates
// qelib1 lacks), measurements map register slots verbatim, and
// conditionals use the single-bit if-form. Everything QASM 2.0 cannot
// express — noise channels, statevector access, repeated-measurement
// batching — is emitted as a "// pragma:" comment, so the file stays
// loadable by standard tools while recording the full circuit.
//
// QASM 2.0 has no parameter symbols, so a circuit that still carries
// free parameters is rejected with ErrUnboundCircuit; bind it first.
package qasm
