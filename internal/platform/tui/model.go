package tui

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hello/internal/config"
	"github.com/vovakirdan/tui-hello/internal/core"
	"github.com/vovakirdan/tui-hello/internal/cycler"
	"github.com/vovakirdan/tui-hello/internal/page"
)

// Model is the Bubble Tea model hosting the page and its color cycler.
type Model struct {
	doc      *page.Document
	cycler   *cycler.Cycler // Nil until the page has loaded
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	loaded   bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given document.
// A nil logger discards all log output.
func NewModel(doc *page.Document, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		doc:    doc,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
	}
}

// Init reports the page as loaded. Nothing is recolored until the first tick.
func (m Model) Init() tea.Cmd {
	return loadCmd
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case LoadedMsg:
		return m.handleLoaded()

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Stop()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// handleLoaded binds the cycler and schedules the first tick.
// Only the first load counts.
func (m Model) handleLoaded() (tea.Model, tea.Cmd) {
	if m.loaded {
		return m, nil
	}
	m.loaded = true
	m.cycler = cycler.Attach(m.doc)

	if !m.cycler.HasTarget() {
		m.logger.Warn("target element not found, ticks will not recolor anything", "element", core.TargetID)
	}
	m.logger.Info("cycling started", "element", core.TargetID, "period", core.TickPeriod)

	return m, tickCmd(core.TickPeriod)
}

// handleTick recolors the target and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.cycler == nil || m.cycler.Stopped() {
		return m, nil
	}

	tick := m.cycler.Index()
	color := m.cycler.Tick()
	m.logger.Debug("recolor", "element", core.TargetID, "tick", tick, "color", color)

	return m, tickCmd(core.TickPeriod)
}

// Stop ends cycling; pending ticks are dropped and no more are scheduled.
func (m Model) Stop() {
	if m.cycler != nil && !m.cycler.Stopped() {
		m.cycler.Stop()
		m.logger.Info("cycling stopped", "ticks", m.cycler.Index())
	}
}

// Cycler returns the bound cycler, or nil before the page has loaded.
func (m Model) Cycler() *cycler.Cycler {
	return m.cycler
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys)
	height := m.config.ScreenH - lipgloss.Height(helpView)
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderDocument(m.doc, m.config.ScreenW, height),
		helpView,
	)
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, doc *page.Document, cfg core.RuntimeConfig, display config.DisplaySettings, logger *log.Logger) error {
	model := NewModel(doc, cfg, logger)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if display.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, opts...)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.Stop()
	}

	// Cancellation is the normal teardown path, not a failure
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
