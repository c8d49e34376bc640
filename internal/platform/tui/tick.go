// Package tui provides the Bubble Tea host for the hello page.
// It handles the terminal UI loop, key bindings and rendering of the document.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// LoadedMsg signals that the document is built and the page has finished loading.
type LoadedMsg struct{}

// TickMsg is sent once per recolor period.
type TickMsg time.Time

// loadCmd returns a command reporting that the page has loaded.
func loadCmd() tea.Msg {
	return LoadedMsg{}
}

// tickCmd returns a Bubble Tea command that sends a single tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
