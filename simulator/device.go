package simulator

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// DeviceProfile describes the emulated device: a qubit ceiling and
// ambient decoherence rates applied after every gate. The zero value is
// an ideal device; WithDefaults fills in the remaining blanks.
type DeviceProfile struct {
	// MaxQubits caps the simulator capacity; 0 defers to the Options ceiling.
	MaxQubits int `yaml:"maxQubits"`
	// Seed fixes the random stream for reproducible shot records; 0 keeps
	// the simulator's own seeding (WithSeed, or time-based).
	Seed int64 `yaml:"seed"`
	// GateTime is the duration one gate occupies, in the same unit the
	// rates use. Noise strength per gate is rate * gateTime.
	GateTime float64 `yaml:"gateTime"`
	// DampingRate is the amplitude damping rate toward |0>. 0 disables.
	DampingRate float64 `yaml:"dampingRate"`
	// DephasingRate is the pure dephasing rate. 0 disables.
	DephasingRate float64 `yaml:"dephasingRate"`
	// DepolarisingRate is the symmetric depolarising rate. 0 disables.
	DepolarisingRate float64 `yaml:"depolarisingRate"`
}

// WithDefaults returns a copy with zero fields replaced by defaults.
// Rates stay as given: zero means the channel is off.
func (p DeviceProfile) WithDefaults() DeviceProfile {
	if p.GateTime == 0 {
		p.GateTime = 1.0
	}

	return p
}

// Noisy reports whether any decoherence channel is active.
func (p DeviceProfile) Noisy() bool {
	return p.DampingRate > 0 || p.DephasingRate > 0 || p.DepolarisingRate > 0
}

// LoadDeviceProfile reads a YAML device profile from disk and applies
// defaults. Negative rates are rejected; the profile would silently
// amplify instead of decohere.
func LoadDeviceProfile(path string) (DeviceProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DeviceProfile{}, errors.Wrap(err, "read device profile")
	}
	var profile DeviceProfile
	if err = yaml.Unmarshal(data, &profile); err != nil {
		return DeviceProfile{}, errors.Wrap(err, "parse device profile")
	}
	if profile.DampingRate < 0 || profile.DephasingRate < 0 || profile.DepolarisingRate < 0 ||
		profile.GateTime < 0 {
		return DeviceProfile{}, errors.Errorf("device profile %s: rates and gate time must be non-negative", path)
	}

	return profile.WithDefaults(), nil
}
