package render

import "github.com/charmbracelet/lipgloss"

// Diagram styles, applied only when color is enabled.
var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7dcfff"))
	gateStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#73daca"))
	controlStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff9e64"))
	measureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bb9af7"))
	noiseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
)

// Options configures the renderer.
//
// Color – emit ANSI styling; off by default so output stays pipe-safe.
type Options struct {
	Color bool
}

// Option represents a functional option for configuring Draw.
type Option func(*Options)

// WithColor toggles ANSI styling.
func WithColor(color bool) Option {
	return func(o *Options) {
		o.Color = color
	}
}

// DefaultOptions returns the plain-text defaults.
func DefaultOptions() Options {
	return Options{Color: false}
}
