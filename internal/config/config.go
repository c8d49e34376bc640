// Package config provides YAML-based settings loading for the hello page.
//
// Settings cover how the program runs (logging, screen handling), never what
// it shows: the palette, tick period and target element are fixed in core.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Settings contains all runtime settings.
type Settings struct {
	Log     LogSettings     `yaml:"log"`
	Display DisplaySettings `yaml:"display"`
}

// LogSettings controls the logger.
type LogSettings struct {
	Level string `yaml:"level"` // debug, info, warn, error, fatal
	File  string `yaml:"file"`  // Log file used in TUI mode; empty discards logs
}

// DisplaySettings controls how the page is presented.
type DisplaySettings struct {
	AltScreen bool `yaml:"alt_screen"` // Use the alternate screen buffer
	Headless  bool `yaml:"headless"`   // Log recolors instead of drawing a UI
}

// Validate checks that the settings are usable.
func (s Settings) Validate() error {
	if _, err := log.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}
