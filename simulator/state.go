package simulator

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// state is a dense statevector over qubits 0..n-1. Index bit q of an
// amplitude's position selects the basis value of qubit q, so single-
// qubit gates walk index pairs differing in one bit.
type state struct {
	amps   []complex128
	qubits int
}

// newState allocates |0...0>.
func newState(qubits int) *state {
	amps := make([]complex128, 1<<qubits)
	amps[0] = 1

	return &state{amps: amps, qubits: qubits}
}

// clone copies the full amplitude vector.
func (s *state) clone() *state {
	amps := make([]complex128, len(s.amps))
	copy(amps, s.amps)

	return &state{amps: amps, qubits: s.qubits}
}

// norm returns the squared vector norm, 1 for a healthy state.
func (s *state) norm() float64 {
	total := 0.0
	for _, a := range s.amps {
		total += real(a)*real(a) + imag(a)*imag(a)
	}

	return total
}

// applySingle multiplies one qubit by the 2x2 matrix {{m00, m01}, {m10, m11}}.
func (s *state) applySingle(q int, m00, m01, m10, m11 complex128) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.amps[i], s.amps[j]
			s.amps[i] = m00*a0 + m01*a1
			s.amps[j] = m10*a0 + m11*a1
		}
	}
}

// applyPhase multiplies the |1> component of one qubit by factor.
func (s *state) applyPhase(q int, factor complex128) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= factor
		}
	}
}

func (s *state) hadamard(q int) {
	h := complex(1/math.Sqrt2, 0)
	s.applySingle(q, h, h, h, -h)
}

func (s *state) pauliX(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

func (s *state) pauliY(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = -1i*s.amps[j], 1i*s.amps[i]
		}
	}
}

func (s *state) pauliZ(q int) {
	s.applyPhase(q, -1)
}

// sqrtPauliX applies (1/2)[[1+i, 1-i], [1-i, 1+i]], the half bit-flip.
func (s *state) sqrtPauliX(q int) {
	p := complex(0.5, 0.5)
	m := complex(0.5, -0.5)
	s.applySingle(q, p, m, m, p)
}

func (s *state) sGate(q int) {
	s.applyPhase(q, 1i)
}

func (s *state) tGate(q int) {
	s.applyPhase(q, cmplx.Exp(complex(0, math.Pi/4)))
}

func (s *state) rotateX(q int, theta float64) {
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	s.applySingle(q, c, js, js, c)
}

func (s *state) rotateY(q int, theta float64) {
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	s.applySingle(q, c, -sn, sn, c)
}

func (s *state) rotateZ(q int, theta float64) {
	phase := cmplx.Exp(complex(0, theta/2))
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= phase
		} else {
			s.amps[i] *= cmplx.Conj(phase)
		}
	}
}

func (s *state) phaseShift(q int, phi float64) {
	s.applyPhase(q, cmplx.Exp(complex(0, phi)))
}

func (s *state) cnot(control, target int) {
	cBit, tBit := 1<<control, 1<<target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

func (s *state) controlledPauliZ(control, target int) {
	cBit, tBit := 1<<control, 1<<target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit != 0 {
			s.amps[i] *= -1
		}
	}
}

func (s *state) controlledPhaseShift(control, target int, phi float64) {
	factor := cmplx.Exp(complex(0, phi))
	cBit, tBit := 1<<control, 1<<target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit != 0 {
			s.amps[i] *= factor
		}
	}
}

func (s *state) swap(q0, q1 int) {
	bit0, bit1 := 1<<q0, 1<<q1
	for i := range s.amps {
		if i&bit0 != 0 && i&bit1 == 0 {
			j := (i &^ bit0) | bit1
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// iswap exchanges |01> and |10> amplitudes with an i phase.
func (s *state) iswap(q0, q1 int) {
	bit0, bit1 := 1<<q0, 1<<q1
	for i := range s.amps {
		if i&bit0 != 0 && i&bit1 == 0 {
			j := (i &^ bit0) | bit1
			s.amps[i], s.amps[j] = 1i*s.amps[j], 1i*s.amps[i]
		}
	}
}

func (s *state) toffoli(control0, control1, target int) {
	c0, c1, tBit := 1<<control0, 1<<control1, 1<<target
	for i := range s.amps {
		if i&c0 != 0 && i&c1 != 0 && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// probabilityOne returns the Born probability of reading qubit q as 1.
func (s *state) probabilityOne(q int) float64 {
	bit := 1 << q
	p := 0.0
	for i, a := range s.amps {
		if i&bit != 0 {
			p += real(a)*real(a) + imag(a)*imag(a)
		}
	}

	return p
}

// measure samples qubit q, collapses the state onto the observed branch,
// and renormalizes. Returns the sampled bit.
func (s *state) measure(q int, rng *rand.Rand) bool {
	p1 := s.probabilityOne(q)
	one := rng.Float64() < p1
	s.project(q, one)

	return one
}

// project collapses qubit q onto the given basis value and renormalizes.
// A zero-probability branch leaves the state zeroed; callers guard via
// the sampling probability.
func (s *state) project(q int, one bool) {
	bit := 1 << q
	kept := 0.0
	for i, a := range s.amps {
		hit := i&bit != 0
		if hit == one {
			kept += real(a)*real(a) + imag(a)*imag(a)
		} else {
			s.amps[i] = 0
		}
	}
	if kept <= 0 {
		return
	}
	scale := complex(1/math.Sqrt(kept), 0)
	for i, a := range s.amps {
		if a != 0 {
			s.amps[i] = a * scale
		}
	}
}

// sampleIndex draws one full basis state from the Born distribution
// without collapsing. Rounding slack falls to the last nonzero amplitude.
func (s *state) sampleIndex(rng *rand.Rand) int {
	r := rng.Float64()
	acc := 0.0
	last := 0
	for i, a := range s.amps {
		p := real(a)*real(a) + imag(a)*imag(a)
		if p == 0 {
			continue
		}
		last = i
		acc += p
		if r < acc {
			return i
		}
	}

	return last
}

// renormalize rescales the vector to unit norm. Returns false when the
// norm vanished and no scale exists.
func (s *state) renormalize() bool {
	n := s.norm()
	if n <= 0 {
		return false
	}
	scale := complex(1/math.Sqrt(n), 0)
	for i := range s.amps {
		s.amps[i] *= scale
	}

	return true
}
