// Package core holds the fixed values shared by every host of the color cycler.
package core

import "time"

const (
	// TargetID is the identifier of the element that gets recolored.
	TargetID = "hello"

	// TickPeriod is the interval between recolors. The first recolor happens
	// one full period after the page has loaded.
	TickPeriod = 700 * time.Millisecond
)

// RuntimeConfig contains the terminal dimensions passed to the TUI host.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
