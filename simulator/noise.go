package simulator

import (
	"math"
	"math/rand"
)

// Noise channels run as stochastic trajectories: one RunCircuit call is a
// single unraveling, so each channel either applies a jump operator or
// the matching no-jump evolution, chosen by the Born weight of the jump.
// Averaged over many runs (or many seeds) the statistics converge to the
// density-matrix channel the pragma describes.

// channelStrength converts a rate and duration into the channel
// probability 1 - e^(-rate*time).
func channelStrength(rate, gateTime float64) float64 {
	if rate <= 0 || gateTime <= 0 {
		return 0
	}

	return 1 - math.Exp(-rate*gateTime)
}

// damp applies amplitude damping toward |0> on qubit q with strength
// gamma. Jump branch: the qubit decays and the |1> component collapses
// away. No-jump branch: the |1> amplitudes shrink by sqrt(1-gamma) and
// the state renormalizes, the usual weak-measurement back-action.
func (s *state) damp(q int, gamma float64, rng *rand.Rand) {
	if gamma <= 0 {
		return
	}
	pJump := s.probabilityOne(q) * gamma
	bit := 1 << q
	if rng.Float64() < pJump {
		for i := range s.amps {
			if i&bit == 0 {
				s.amps[i] = s.amps[i|bit]
				s.amps[i|bit] = 0
			}
		}
		s.renormalize()

		return
	}
	shrink := complex(math.Sqrt(1-gamma), 0)
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= shrink
		}
	}
	s.renormalize()
}

// dephase applies pure dephasing on qubit q: a Z kick with probability
// gamma/2, the trajectory form of coherence decay without population
// transfer.
func (s *state) dephase(q int, gamma float64, rng *rand.Rand) {
	if gamma <= 0 {
		return
	}
	if rng.Float64() < gamma/2 {
		s.pauliZ(q)
	}
}

// depolarise applies the symmetric channel on qubit q: with total
// probability 3*gamma/4 one of X, Y, Z hits, each equally likely.
func (s *state) depolarise(q int, gamma float64, rng *rand.Rand) {
	if gamma <= 0 {
		return
	}
	if rng.Float64() >= 3*gamma/4 {
		return
	}
	switch rng.Intn(3) {
	case 0:
		s.pauliX(q)
	case 1:
		s.pauliY(q)
	default:
		s.pauliZ(q)
	}
}
