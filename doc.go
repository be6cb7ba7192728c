// Package quarc is a symbolic quantum circuit toolkit — build circuits
// with free parameters, bundle them with measurement observables, and
// evaluate them on pluggable backends.
//
// 🚀 What is quarc?
//
//	A value-semantics circuit IR plus a measurement pipeline:
//		• Symbolic parameters: gate angles stay expressions until you bind them
//		• A sealed operation set: gates, measurements, registers, noise pragmas
//		• Pauli-Z product observables estimated from raw shot records
//		• Programs: circuits + observable + parameter order, run at any point
//		• A statevector simulator with stochastic trajectory noise
//		• OpenQASM 2.0 export and Unicode wire diagrams
//
// ✨ Why choose quarc?
//
//   - Immutable everywhere – circuits and operations are plain values; no
//     hidden mutation between build and run
//   - Backend-agnostic – one small interface separates circuit semantics
//     from execution; the simulator is just the reference implementation
//   - Honest errors – sentinel errors with typed wrappers, checkable with
//     errors.Is at every layer
//
// Under the hood, everything is organized by concern:
//
//	scalar/      — parameter values: concrete floats and symbolic expressions
//	circuit/     — operations, circuits, validation, JSON wire form
//	registers/   — classical output spaces: bit, float and complex rows
//	measurement/ — Pauli-Z product observables over recorded rows
//	backend/     — the execution contract and its error taxonomy
//	program/     — circuits + measurement + parameters, bound and run together
//	simulator/   — statevector backend with trajectory noise and device profiles
//	qasm/        — OpenQASM 2.0 export
//	render/      — Unicode wire diagrams
//
// Quick wire example:
//
//	q0: ─┤H├─●─
//	q1: ─────⊕─
//
//	prepares a Bell pair; measuring both qubits gives perfectly
//	correlated, individually random bits.
//
// Dive into examples/ for teleportation, parameter sweeps and noise
// studies end to end.
//
//	go get github.com/quarclab/quarc
package quarc
