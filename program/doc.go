// Package program couples parameterized circuits with a measurement
// descriptor into a runnable quantum program.
//
// 🚀 What is a Program?
//
//	A Program owns three things: the circuits to execute, the measurement
//	descriptor that turns their register rows into named expectation
//	values, and the ordered list of free parameter names the circuits may
//	reference.  Run binds positional values to those names, substitutes
//	every circuit to a concrete form, executes them against a Backend,
//	pools the resulting registers, and evaluates the descriptor, so a
//	variational sweep is one call per parameter point.
//
// ✨ Key behaviors:
//   - construction rejects circuits referencing names outside the
//     declared parameter list, so binding failures cannot surface later
//   - declared-but-unused names are allowed; UnusedParameters reports
//     them for callers that want to warn
//   - Run checks arity before any backend call: a wrong value count
//     never reaches the executor
//   - substitution is per-circuit all-or-nothing, and register spaces
//     pool by row append in circuit order
//   - a Program is immutable after construction and safe for concurrent
//     Run calls, one backend per goroutine or a thread-safe backend
//
// ⚙️ Usage:
//
//	p, err := program.New(descriptor, []circuit.Circuit{c}, []string{"theta"})
//	if err != nil { ... }
//	values, err := p.Run(ctx, sim, []float64{1.57})
//	// values["energy"] is the estimate at theta = 1.57
//
// Backend failures propagate with circuit context attached and the
// original error reachable through errors.Is; the package never retries.
package program
