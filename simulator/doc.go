// Package simulator provides the reference statevector backend: a dense
// amplitude-vector engine that executes concrete circuits and fills
// classical registers, shot by shot.
//
// 🚀 What does the simulator do?
//
//	It implements backend.Backend for every operation in the circuit
//	package: gates evolve the 2^n amplitude vector in place, measurements
//	sample the Born rule, conditionals branch on classical bits already
//	recorded in the same run, and the statevector pragmas read or replace
//	the amplitudes directly.  Noise pragmas run as one stochastic
//	trajectory per call: each RunCircuit is a single unraveling of the
//	density-matrix channel the pragma describes.
//
// ✨ Key behaviors:
//   - deterministic replay: WithSeed fixes the random stream, so equal
//     seeds reproduce equal shots
//   - register discipline: writes to undeclared names, foreign kinds, or
//     out-of-range slots fail with backend.ErrRegisterClash, and one
//     register cannot mix single-slot writes with repeated measurement
//   - only registers defined with Output reach the caller; the rest stay
//     internal scratch
//   - cancellation is honored between shots, so a caller-imposed timeout
//     cuts long sampling loops
//   - an injected zap logger records each run under a fresh UUID; the
//     default is a no-op logger, keeping the library silent
//
// ⚙️ Usage:
//
//	sim, err := simulator.New(2, simulator.WithSeed(42))
//	if err != nil { ... }
//	space, err := sim.RunCircuit(ctx, bellCircuit)
//	// space.Bits["ro"] holds one row per shot
//
// A Simulator owns one random stream and one scratch state, so share it
// across goroutines only behind your own synchronization; independent
// concurrent runs want independent Simulator values.
//
// Device emulation: a DeviceProfile (in code or loaded from YAML) caps
// the qubit count and, when its rates are nonzero, applies the matching
// noise channel after every gate, turning the ideal engine into a crude
// NISQ stand-in without touching the circuit.
package simulator
