package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hello/internal/core"
	"github.com/vovakirdan/tui-hello/internal/page"
)

// loadedModel returns a model that has processed its load event.
func loadedModel(t *testing.T, doc *page.Document) Model {
	t.Helper()

	m := NewModel(doc, core.DefaultConfig(), nil)
	msg := m.Init()()
	if _, ok := msg.(LoadedMsg); !ok {
		t.Fatalf("Init() command produced %T, want LoadedMsg", msg)
	}

	updated, cmd := m.Update(msg)
	if cmd == nil {
		t.Fatal("LoadedMsg did not schedule a tick")
	}
	return updated.(Model)
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(TickMsg(time.Now()))
	return updated.(Model), cmd
}

func TestInitDoesNotRecolor(t *testing.T) {
	doc := page.Default()
	m := NewModel(doc, core.DefaultConfig(), nil)
	m.Init()

	if m.Cycler() != nil {
		t.Error("cycler bound before the page loaded")
	}
	el, _ := doc.ElementByID(core.TargetID)
	if el.Color() != "" {
		t.Errorf("color applied by Init: %s", el.Color())
	}
}

func TestLoadedSchedulesWithoutRecolor(t *testing.T) {
	doc := page.Default()
	m := loadedModel(t, doc)

	if m.Cycler() == nil {
		t.Fatal("cycler not bound after load")
	}
	if m.Cycler().Index() != 0 {
		t.Errorf("Index() = %d after load, want 0", m.Cycler().Index())
	}
	el, _ := doc.ElementByID(core.TargetID)
	if el.Color() != "" {
		t.Errorf("color applied at load: %s", el.Color())
	}
}

func TestTicksCyclePalette(t *testing.T) {
	doc := page.Default()
	m := loadedModel(t, doc)
	el, _ := doc.ElementByID(core.TargetID)

	want := []string{
		"#1e90ff", "#ff69b4", "#32cd32", "#ffa500", "#8a2be2", "#1e90ff", "#ff69b4",
	}
	for n, expected := range want {
		var cmd tea.Cmd
		m, cmd = tick(t, m)
		if cmd == nil {
			t.Fatalf("tick %d did not schedule the next tick", n)
		}
		if el.Color() != expected {
			t.Errorf("tick %d: color = %s, want %s", n, el.Color(), expected)
		}
	}
}

func TestSecondLoadIgnored(t *testing.T) {
	m := loadedModel(t, page.Default())
	first := m.Cycler()
	m, _ = tick(t, m)

	updated, cmd := m.Update(LoadedMsg{})
	m = updated.(Model)

	if cmd != nil {
		t.Error("second LoadedMsg scheduled another tick chain")
	}
	if m.Cycler() != first {
		t.Error("second LoadedMsg rebound the cycler")
	}
	if m.Cycler().Index() != 1 {
		t.Errorf("Index() = %d, want 1", m.Cycler().Index())
	}
}

func TestTickBeforeLoadIgnored(t *testing.T) {
	m := NewModel(page.Default(), core.DefaultConfig(), nil)
	m, cmd := tick(t, m)
	if cmd != nil {
		t.Error("tick before load scheduled another tick")
	}
	if m.Cycler() != nil {
		t.Error("tick before load bound a cycler")
	}
}

func TestMissingElementTicksSafely(t *testing.T) {
	doc := page.NewDocument()
	doc.Add(page.NewElement("caption", "nothing to color"))

	m := loadedModel(t, doc)
	if m.Cycler().HasTarget() {
		t.Fatal("HasTarget() = true without the target element")
	}

	for n := 0; n < 7; n++ {
		var cmd tea.Cmd
		m, cmd = tick(t, m)
		if cmd == nil {
			t.Fatalf("tick %d stopped the chain", n)
		}
	}

	if !strings.Contains(m.View(), "nothing to color") {
		t.Error("View() lost the remaining element")
	}
}

func TestQuitStopsCycling(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := page.Default()
			m := loadedModel(t, doc)
			m, _ = tick(t, m)

			updated, cmd := m.Update(tt.msg)
			m = updated.(Model)

			if cmd == nil {
				t.Fatal("quit key returned no command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("quit key did not return tea.Quit")
			}
			if !m.Cycler().Stopped() {
				t.Error("cycler not stopped on quit")
			}

			m, cmd = tick(t, m)
			if cmd != nil {
				t.Error("tick after quit scheduled another tick")
			}
			el, _ := doc.ElementByID(core.TargetID)
			if el.Color() != core.DefaultPalette[0] {
				t.Errorf("color changed after quit: %s", el.Color())
			}
			if m.View() != "" {
				t.Error("View() not empty after quit")
			}
		})
	}
}

func TestHelpToggle(t *testing.T) {
	m := NewModel(page.Default(), core.DefaultConfig(), nil)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = updated.(Model)
	if !m.help.ShowAll {
		t.Error("help not expanded after ?")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = updated.(Model)
	if m.help.ShowAll {
		t.Error("help not collapsed after second ?")
	}
}

func TestResize(t *testing.T) {
	m := NewModel(page.Default(), core.DefaultConfig(), nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.config.ScreenW, m.config.ScreenH)
	}
	if m.help.Width != 120 {
		t.Errorf("help width = %d, want 120", m.help.Width)
	}
}

func TestViewShowsDocument(t *testing.T) {
	m := loadedModel(t, page.Default())
	m, _ = tick(t, m)

	view := m.View()
	for _, want := range []string{"Hello, World!", "press q to quit", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestTickCmdWaitsOnePeriod(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for a real tick")
	}

	start := time.Now()
	msg := tickCmd(core.TickPeriod)()
	elapsed := time.Since(start)

	if _, ok := msg.(TickMsg); !ok {
		t.Fatalf("tickCmd produced %T, want TickMsg", msg)
	}
	if elapsed < core.TickPeriod-20*time.Millisecond {
		t.Errorf("tick fired after %v, want about %v", elapsed, core.TickPeriod)
	}
	if elapsed > 2*core.TickPeriod {
		t.Errorf("tick fired after %v, want about %v", elapsed, core.TickPeriod)
	}
}
