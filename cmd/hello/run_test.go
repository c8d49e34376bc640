package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: info\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	flagConfig, flagLogLevel, flagHeadless = path, "debug", true
	t.Cleanup(func() {
		flagConfig, flagLogLevel, flagHeadless = "", "", false
	})

	settings, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings() failed: %v", err)
	}
	if settings.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", settings.Log.Level, "debug")
	}
	if !settings.Display.Headless {
		t.Error("Display.Headless = false, want true")
	}
}

func TestLoadSettingsBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: info\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	flagConfig, flagLogLevel = path, "shouting"
	t.Cleanup(func() {
		flagConfig, flagLogLevel = "", ""
	})

	if _, err := loadSettings(); err == nil {
		t.Error("loadSettings() accepted an unknown log level")
	}
}
