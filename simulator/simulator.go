package simulator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quarclab/quarc/backend"
	"github.com/quarclab/quarc/circuit"
	"github.com/quarclab/quarc/registers"
	"github.com/quarclab/quarc/scalar"
)

// backendName tags SimulationErrors raised by this package.
const backendName = "statevector"

// Simulator is a dense statevector backend with a fixed qubit capacity.
// It owns one random stream, so concurrent RunCircuit calls on the same
// value race; give each goroutine its own Simulator.
type Simulator struct {
	qubits int
	opts   Options
	log    *zap.Logger
	rng    *rand.Rand
}

// New builds a simulator for qubitCount qubits. The capacity is checked
// against the configured ceiling (and the device profile's, when set)
// before any amplitude memory would be committed.
func New(qubitCount int, opts ...Option) (*Simulator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if qubitCount < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadQubitCount, qubitCount)
	}
	limit := o.MaxQubits
	if o.Device.MaxQubits > 0 && o.Device.MaxQubits < limit {
		limit = o.Device.MaxQubits
	}
	if qubitCount > limit {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyQubits, qubitCount, limit)
	}

	seed := o.Seed
	if seed == 0 {
		seed = o.Device.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log := o.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Simulator{
		qubits: qubitCount,
		opts:   o,
		log:    log,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// QubitCount returns the simulator's capacity.
func (s *Simulator) QubitCount() int { return s.qubits }

// fail wraps an execution failure in the backend error taxonomy.
func fail(op circuit.Kind, err error) error {
	return &backend.SimulationError{Backend: backendName, Op: op, Err: err}
}

// run carries the per-call execution state: the evolving statevector,
// the full internal register space, and the bookkeeping that separates
// single-slot measurement from repeated sampling.
type run struct {
	sim      *Simulator
	ctx      context.Context
	state    *state
	space    registers.Space
	lengths  map[string]int
	outputs  map[string]struct{}
	rowBuf   map[string][]bool
	single   map[string]struct{}
	repeated map[string]struct{}
}

// RunCircuit executes one concrete circuit and returns the registers
// defined with Output set. The circuit is validated up front: structural
// invariants, no free parameters, and the qubit span within capacity, so
// a broken circuit fails before any amplitude changes.
func (s *Simulator) RunCircuit(ctx context.Context, c circuit.Circuit) (registers.Space, error) {
	start := time.Now()
	runID := uuid.NewString()
	s.log.Debug("run started",
		zap.String("run_id", runID),
		zap.Int("qubits", s.qubits),
		zap.Int("operations", c.Len()),
	)

	if err := c.Validate(); err != nil {
		return registers.Space{}, fail("", err)
	}
	if c.IsParameterized() {
		return registers.Space{}, fail("", fmt.Errorf("%w: %v", backend.ErrSymbolicCircuit, c.Variables()))
	}
	if span := c.QubitCount(); span > s.qubits {
		return registers.Space{}, fail("", fmt.Errorf("%w: circuit spans %d qubits, capacity is %d",
			backend.ErrQubitOutOfRange, span, s.qubits))
	}

	r := &run{
		sim:      s,
		ctx:      ctx,
		state:    newState(s.qubits),
		space:    registers.NewSpace(),
		lengths:  make(map[string]int),
		outputs:  make(map[string]struct{}),
		rowBuf:   make(map[string][]bool),
		single:   make(map[string]struct{}),
		repeated: make(map[string]struct{}),
	}
	if err := r.declare(c); err != nil {
		return registers.Space{}, err
	}
	if err := r.exec(c.Operations()); err != nil {
		return registers.Space{}, err
	}
	r.flushSingleRows()

	out := r.outputSpace()
	s.log.Info("run finished",
		zap.String("run_id", runID),
		zap.Int("bit_registers", len(out.Bits)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return out, nil
}

// declare registers every definition in the circuit, nested bodies
// included, before execution starts. Redeclaring a name under another
// kind or length is a clash; an exact duplicate is tolerated, matching
// the merge-friendly semantics register pooling relies on.
func (r *run) declare(c circuit.Circuit) error {
	for _, def := range c.Definitions() {
		if have, ok := r.lengths[def.Name]; ok {
			kind, _ := r.space.KindOf(def.Name)
			if kind != def.Element || have != def.Length {
				return fail(circuit.KindDefineRegister,
					fmt.Errorf("%w: %q redeclared with a different shape", backend.ErrRegisterClash, def.Name))
			}

			continue
		}
		if err := r.space.Declare(def.Name, def.Element); err != nil {
			return fail(circuit.KindDefineRegister, fmt.Errorf("%w: %v", backend.ErrRegisterClash, err))
		}
		r.lengths[def.Name] = def.Length
		if def.Output {
			r.outputs[def.Name] = struct{}{}
		}
		if def.Element == registers.Bit {
			r.rowBuf[def.Name] = make([]bool, def.Length)
		}
	}

	return nil
}

// exec walks operations in order, dispatching exhaustively over the
// closed variant set.
func (r *run) exec(ops []circuit.Operation) error {
	for _, op := range ops {
		if err := r.ctx.Err(); err != nil {
			return fail(op.Kind(), err)
		}
		if r.applyGate(r.state, op) {
			r.deviceNoise(op)

			continue
		}

		switch o := op.(type) {
		case circuit.DefineRegister:
			// Declared up front; execution order is irrelevant for storage.
		case circuit.MeasureQubit:
			if err := r.measureQubit(o); err != nil {
				return err
			}
		case circuit.PragmaRepeatedMeasurement:
			if err := r.repeatedMeasurement(o); err != nil {
				return err
			}
		case circuit.PragmaSetStateVector:
			if err := r.setStateVector(o); err != nil {
				return err
			}
		case circuit.PragmaGetStateVector:
			if err := r.getStateVector(o); err != nil {
				return err
			}
		case circuit.PragmaConditional:
			taken, err := r.conditionBit(o)
			if err != nil {
				return err
			}
			if taken {
				if err = r.exec(o.Body.Operations()); err != nil {
					return err
				}
			}
		case circuit.PragmaDamping:
			r.state.damp(o.Qubit, noiseStrength(o.GateTime, o.Rate), r.sim.rng)
		case circuit.PragmaDephasing:
			r.state.dephase(o.Qubit, noiseStrength(o.GateTime, o.Rate), r.sim.rng)
		case circuit.PragmaDepolarising:
			r.state.depolarise(o.Qubit, noiseStrength(o.GateTime, o.Rate), r.sim.rng)
		default:
			return fail(op.Kind(), backend.ErrUnsupportedOperation)
		}
	}

	return nil
}

// applyGate handles the unitary gate variants against the given state.
// Returns false for non-gate operations. The parameters are concrete by
// the time execution starts, so evaluation cannot fail here.
func (r *run) applyGate(st *state, op circuit.Operation) bool {
	switch g := op.(type) {
	case circuit.Hadamard:
		st.hadamard(g.Qubit)
	case circuit.PauliX:
		st.pauliX(g.Qubit)
	case circuit.PauliY:
		st.pauliY(g.Qubit)
	case circuit.PauliZ:
		st.pauliZ(g.Qubit)
	case circuit.SqrtPauliX:
		st.sqrtPauliX(g.Qubit)
	case circuit.SGate:
		st.sGate(g.Qubit)
	case circuit.TGate:
		st.tGate(g.Qubit)
	case circuit.RotateX:
		st.rotateX(g.Qubit, concrete(g.Theta))
	case circuit.RotateY:
		st.rotateY(g.Qubit, concrete(g.Theta))
	case circuit.RotateZ:
		st.rotateZ(g.Qubit, concrete(g.Theta))
	case circuit.PhaseShift:
		st.phaseShift(g.Qubit, concrete(g.Phi))
	case circuit.CNOT:
		st.cnot(g.Control, g.Target)
	case circuit.ControlledPauliZ:
		st.controlledPauliZ(g.Control, g.Target)
	case circuit.ControlledPhaseShift:
		st.controlledPhaseShift(g.Control, g.Target, concrete(g.Phi))
	case circuit.SWAP:
		st.swap(g.Qubit0, g.Qubit1)
	case circuit.ISwap:
		st.iswap(g.Qubit0, g.Qubit1)
	case circuit.Toffoli:
		st.toffoli(g.Control0, g.Control1, g.Target)
	default:
		return false
	}

	return true
}

// deviceNoise applies the profile's ambient channels to every qubit the
// gate touched.
func (r *run) deviceNoise(op circuit.Operation) {
	dev := r.sim.opts.Device
	if !dev.Noisy() {
		return
	}
	for _, q := range op.InvolvedQubits() {
		r.state.damp(q, channelStrength(dev.DampingRate, dev.GateTime), r.sim.rng)
		r.state.dephase(q, channelStrength(dev.DephasingRate, dev.GateTime), r.sim.rng)
		r.state.depolarise(q, channelStrength(dev.DepolarisingRate, dev.GateTime), r.sim.rng)
	}
}

// measureQubit samples one qubit, collapses the state, and records the
// bit in the register's single-shot row buffer.
func (r *run) measureQubit(o circuit.MeasureQubit) error {
	if err := r.checkBitRegister(o.Kind(), o.Readout, o.ReadoutIndex); err != nil {
		return err
	}
	if _, ok := r.repeated[o.Readout]; ok {
		return fail(o.Kind(), fmt.Errorf("%w: %q already used for repeated measurement",
			backend.ErrRegisterClash, o.Readout))
	}
	if o.Qubit >= r.sim.qubits {
		return fail(o.Kind(), fmt.Errorf("%w: qubit %d, capacity %d",
			backend.ErrQubitOutOfRange, o.Qubit, r.sim.qubits))
	}
	r.rowBuf[o.Readout][o.ReadoutIndex] = r.state.measure(o.Qubit, r.sim.rng)
	r.single[o.Readout] = struct{}{}

	return nil
}

// repeatedMeasurement samples the current state Repetitions times without
// collapsing it, one register row per shot. Cancellation is honored
// between shots.
func (r *run) repeatedMeasurement(o circuit.PragmaRepeatedMeasurement) error {
	length, ok := r.lengths[o.Readout]
	if !ok {
		return fail(o.Kind(), fmt.Errorf("%w: %q not declared", backend.ErrRegisterClash, o.Readout))
	}
	if kind, _ := r.space.KindOf(o.Readout); kind != registers.Bit {
		return fail(o.Kind(), fmt.Errorf("%w: %q is %s, repeated measurement needs Bit",
			backend.ErrRegisterClash, o.Readout, kind))
	}
	if _, ok = r.single[o.Readout]; ok {
		return fail(o.Kind(), fmt.Errorf("%w: %q already holds single-shot measurements",
			backend.ErrRegisterClash, o.Readout))
	}
	if _, ok = r.repeated[o.Readout]; ok {
		return fail(o.Kind(), fmt.Errorf("%w: %q already sampled by a repeated measurement",
			backend.ErrRegisterClash, o.Readout))
	}

	mapping := o.QubitMapping
	if mapping == nil {
		mapping = make(map[int]int, length)
		for i := 0; i < length; i++ {
			mapping[i] = i
		}
	}
	for q, slot := range mapping {
		if q >= r.sim.qubits {
			return fail(o.Kind(), fmt.Errorf("%w: qubit %d, capacity %d",
				backend.ErrQubitOutOfRange, q, r.sim.qubits))
		}
		if slot < 0 || slot >= length {
			return fail(o.Kind(), fmt.Errorf("%w: slot %d outside %q[%d]",
				backend.ErrRegisterClash, slot, o.Readout, length))
		}
	}

	for shot := 0; shot < o.Repetitions; shot++ {
		if err := r.ctx.Err(); err != nil {
			return fail(o.Kind(), err)
		}
		idx := r.state.sampleIndex(r.sim.rng)
		row := make(registers.BitRow, length)
		for q, slot := range mapping {
			row[slot] = idx&(1<<q) != 0
		}
		if err := r.space.AppendBitRow(o.Readout, row); err != nil {
			return fail(o.Kind(), fmt.Errorf("%w: %v", backend.ErrRegisterClash, err))
		}
	}
	r.repeated[o.Readout] = struct{}{}

	return nil
}

// setStateVector replaces the live amplitudes. The vector must span the
// full capacity and be normalized; anything else is an invalid state,
// not a silent rescale.
func (r *run) setStateVector(o circuit.PragmaSetStateVector) error {
	want := 1 << r.sim.qubits
	if len(o.Amplitudes) != want {
		return fail(o.Kind(), fmt.Errorf("%w: got %d amplitudes, want %d",
			backend.ErrInvalidState, len(o.Amplitudes), want))
	}
	norm := 0.0
	for _, a := range o.Amplitudes {
		norm += real(a)*real(a) + imag(a)*imag(a)
	}
	if norm < 1-1e-9 || norm > 1+1e-9 {
		return fail(o.Kind(), fmt.Errorf("%w: squared norm %g", backend.ErrInvalidState, norm))
	}
	copy(r.state.amps, o.Amplitudes)

	return nil
}

// getStateVector snapshots the amplitudes into a complex register row.
// The optional rotation runs on a scratch copy, so the live state never
// moves; only unitary gates are legal inside it.
func (r *run) getStateVector(o circuit.PragmaGetStateVector) error {
	length, ok := r.lengths[o.Readout]
	if !ok {
		return fail(o.Kind(), fmt.Errorf("%w: %q not declared", backend.ErrRegisterClash, o.Readout))
	}
	if kind, _ := r.space.KindOf(o.Readout); kind != registers.Complex {
		return fail(o.Kind(), fmt.Errorf("%w: %q is %s, statevector readout needs Complex",
			backend.ErrRegisterClash, o.Readout, kind))
	}
	if length != len(r.state.amps) {
		return fail(o.Kind(), fmt.Errorf("%w: %q[%d] cannot hold %d amplitudes",
			backend.ErrRegisterClash, o.Readout, length, len(r.state.amps)))
	}

	scratch := r.state.clone()
	if o.Rotation != nil {
		for _, op := range o.Rotation.Operations() {
			if !r.applyGate(scratch, op) {
				return fail(op.Kind(), fmt.Errorf("%w: only gates are legal in a readout rotation",
					backend.ErrUnsupportedOperation))
			}
		}
	}
	row := make(registers.ComplexRow, len(scratch.amps))
	copy(row, scratch.amps)
	if err := r.space.AppendComplexRow(o.Readout, row); err != nil {
		return fail(o.Kind(), fmt.Errorf("%w: %v", backend.ErrRegisterClash, err))
	}

	return nil
}

// conditionBit reads the classical bit a conditional branches on.
func (r *run) conditionBit(o circuit.PragmaConditional) (bool, error) {
	if err := r.checkBitRegister(o.Kind(), o.Register, o.Bit); err != nil {
		return false, err
	}

	return r.rowBuf[o.Register][o.Bit], nil
}

// checkBitRegister verifies name is a declared bit register and slot is
// inside its length.
func (r *run) checkBitRegister(op circuit.Kind, name string, slot int) error {
	length, ok := r.lengths[name]
	if !ok {
		return fail(op, fmt.Errorf("%w: %q not declared", backend.ErrRegisterClash, name))
	}
	if kind, _ := r.space.KindOf(name); kind != registers.Bit {
		return fail(op, fmt.Errorf("%w: %q is %s, want Bit", backend.ErrRegisterClash, name, kind))
	}
	if slot < 0 || slot >= length {
		return fail(op, fmt.Errorf("%w: slot %d outside %q[%d]", backend.ErrRegisterClash, slot, name, length))
	}

	return nil
}

// flushSingleRows appends the single-shot row of every register written
// through MeasureQubit. Registers nobody wrote stay at zero rows, the
// declared-but-empty shape downstream estimators treat as "no data".
func (r *run) flushSingleRows() {
	for _, name := range r.space.Names(registers.Bit) {
		if _, ok := r.single[name]; !ok {
			continue
		}
		row := make(registers.BitRow, len(r.rowBuf[name]))
		copy(row, r.rowBuf[name])
		// The register was declared Bit and the slot checked at write time.
		_ = r.space.AppendBitRow(name, row)
	}
}

// outputSpace copies the registers marked Output into the returned space.
func (r *run) outputSpace() registers.Space {
	out := registers.NewSpace()
	for name := range r.outputs {
		kind, _ := r.space.KindOf(name)
		_ = out.Declare(name, kind)
		switch kind {
		case registers.Bit:
			out.Bits[name] = append(out.Bits[name], r.space.Bits[name]...)
		case registers.Float:
			out.Floats[name] = append(out.Floats[name], r.space.Floats[name]...)
		case registers.Complex:
			out.Complexes[name] = append(out.Complexes[name], r.space.Complexes[name]...)
		}
	}

	return out
}

// concrete unwraps a scalar known to be bound; execution never starts on
// a parameterized circuit.
func concrete(v scalar.Value) float64 {
	f, _ := v.Float()

	return f
}

// noiseStrength turns a pragma's concrete time and rate into the channel
// probability.
func noiseStrength(gateTime, rate scalar.Value) float64 {
	return channelStrength(concrete(rate), concrete(gateTime))
}
