package simulator

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for simulator construction. Execution failures use the
// backend package's taxonomy instead.
var (
	// ErrBadQubitCount indicates a requested capacity below one qubit.
	ErrBadQubitCount = errors.New("simulator: qubit count must be at least 1")
	// ErrTooManyQubits indicates a requested capacity above the configured ceiling.
	ErrTooManyQubits = errors.New("simulator: qubit count exceeds the configured maximum")
)

// DefaultMaxQubits caps the dense statevector at 2^26 amplitudes, one
// gigabyte of complex128. Raise it deliberately via WithMaxQubits.
const DefaultMaxQubits = 26

// Options configures a Simulator.
//
// Seed      – source for the random stream; 0 draws an arbitrary seed.
// MaxQubits – hard ceiling on the capacity New accepts.
// Logger    – structured run logging; nil means silent.
// Device    – emulated device: qubit ceiling plus ambient noise rates.
type Options struct {
	Seed      int64
	MaxQubits int
	Logger    *zap.Logger
	Device    DeviceProfile
}

// Option represents a functional option for configuring a Simulator.
type Option func(*Options)

// WithSeed fixes the random stream so measurement outcomes and noise
// trajectories replay identically across runs. Zero (the default) keeps
// an arbitrary seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithMaxQubits overrides the capacity ceiling. Must be positive; an
// invalid value panics, signaling programmer error at configuration time.
func WithMaxQubits(max int) Option {
	return func(o *Options) {
		if max < 1 {
			panic(ErrBadQubitCount.Error())
		}
		o.MaxQubits = max
	}
}

// WithLogger injects a structured logger for run lifecycle events.
// Passing nil restores the silent default.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = log
	}
}

// WithDevice applies a device profile: its MaxQubits (when set) caps the
// capacity, and its nonzero noise rates attach the matching channel after
// every gate.
func WithDevice(device DeviceProfile) Option {
	return func(o *Options) {
		o.Device = device.WithDefaults()
	}
}

// DefaultOptions returns the baseline configuration: arbitrary seed, the
// package capacity ceiling, a no-op logger, and an ideal (noiseless)
// device.
func DefaultOptions() Options {
	return Options{
		Seed:      0,
		MaxQubits: DefaultMaxQubits,
		Logger:    nil,
		Device:    DeviceProfile{}.WithDefaults(),
	}
}
