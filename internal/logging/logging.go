// Package logging builds the charmbracelet/log logger used across hello.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hello/internal/config"
)

const prefix = "hello"

// New creates a logger writing to w at the configured level.
func New(w io.Writer, settings config.LogSettings) (*log.Logger, error) {
	level, err := log.ParseLevel(settings.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// ForTUI creates a logger that stays off the terminal while the UI owns it.
// Logs go to settings.File when set and are discarded otherwise.
// The returned close function must be called when the program exits.
func ForTUI(settings config.LogSettings) (*log.Logger, func() error, error) {
	if settings.File == "" {
		logger, err := New(io.Discard, settings)
		return logger, func() error { return nil }, err
	}

	path, err := config.ExpandHome(settings.File)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	logger, err := New(f, settings)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}
