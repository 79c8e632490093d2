// Package controller provides the output side of the watchman CLI: plain-text
// and interactive renderings of analysis results.
package controller

import (
	m "github.com/mouse-blink/watchman/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeAnalyze StartMode = iota
	ModeBrowse
	ModeWatch
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithAnalyzeMode shows results as they arrive and keeps them all.
func WithAnalyzeMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeAnalyze
	}
}

// WithBrowseMode shows a list of stored reports.
func WithBrowseMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBrowse
	}
}

// WithWatchMode replaces the shown result on every new analysis.
func WithWatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeWatch
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeAnalyze}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI renders analysis results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	// Wait blocks until the user closes the UI. Non-interactive UIs return at once.
	Wait()
	// Done is closed when the user closes the UI. It is nil for non-interactive UIs.
	Done() <-chan struct{}
	// DisplayAnalysis shows one analysed line set; plot is empty when not requested.
	DisplayAnalysis(report m.Report, plot string) error
	DisplayReports(reports []m.Report) error
	DisplayWitness(name string, witness m.Witness, verdict string) error
	DisplayError(name string, err error)
}
