package config

import (
	_ "embed"
)

//go:embed defaults/hello.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the hardcoded default settings.
func DefaultSettings() Settings {
	return Settings{
		Log: LogSettings{
			Level: "info",
		},
		Display: DisplaySettings{
			AltScreen: true,
		},
	}
}
