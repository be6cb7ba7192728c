// Package simulator_test: device profile loading and ambient noise.
package simulator_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarclab/quarc/circuit"
	"github.com/quarclab/quarc/registers"
	"github.com/quarclab/quarc/simulator"
)

// writeProfile drops a YAML profile into a temp dir and returns its path.
func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "device.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644), "write profile")

	return path
}

// TestLoadDeviceProfile covers the YAML path: defaults, value pickup, and
// the negative-rate guard.
func TestLoadDeviceProfile(t *testing.T) {
	profile, err := simulator.LoadDeviceProfile(writeProfile(t,
		"maxQubits: 5\nseed: 99\ndampingRate: 0.25\n"))
	require.NoError(t, err, "well-formed profile must load")
	assert.Equal(t, 5, profile.MaxQubits, "qubit ceiling from file")
	assert.Equal(t, int64(99), profile.Seed, "seed from file")
	assert.Equal(t, 0.25, profile.DampingRate, "rate from file")
	assert.Equal(t, 1.0, profile.GateTime, "gate time defaulted")
	assert.True(t, profile.Noisy(), "a nonzero rate makes the device noisy")

	_, err = simulator.LoadDeviceProfile(writeProfile(t, "dephasingRate: -1\n"))
	assert.Error(t, err, "negative rates must be rejected")

	_, err = simulator.LoadDeviceProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "a missing file must be reported")

	_, err = simulator.LoadDeviceProfile(writeProfile(t, "\t not yaml"))
	assert.Error(t, err, "malformed YAML must be reported")
}

// TestWithDevice_AmbientDamping verifies profile noise attaches after
// gates: with a saturating damping rate, an X gate cannot keep the qubit
// excited.
func TestWithDevice_AmbientDamping(t *testing.T) {
	sim, err := simulator.New(1,
		simulator.WithSeed(17),
		simulator.WithDevice(simulator.DeviceProfile{DampingRate: 1000}),
	)
	require.NoError(t, err, "construction must succeed")

	space, err := sim.RunCircuit(context.Background(), circuit.New(
		circuit.DefineRegister{Name: "ro", Length: 1, Element: registers.Bit, Output: true},
		circuit.PauliX{Qubit: 0},
		circuit.MeasureQubit{Qubit: 0, Readout: "ro", ReadoutIndex: 0},
	))
	require.NoError(t, err, "run must succeed")

	rows, ok := space.BitRows("ro")
	require.True(t, ok, "readout register must be returned")
	assert.Equal(t, registers.BitRow{false}, rows[0], "ambient damping relaxes the excitation")
}
