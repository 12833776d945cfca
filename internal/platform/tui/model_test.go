package tui

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/floppy-dot/internal/config"
	"github.com/vovakirdan/floppy-dot/internal/core"
	"github.com/vovakirdan/floppy-dot/internal/games/floppy"
)

func newTestModel(t *testing.T) (Model, *floppy.Game) {
	t.Helper()
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}
	game := floppy.New(config.Default(), rt)
	return NewModel(game, rt, t.TempDir(), nil), game
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelStartsGameOnKey(t *testing.T) {
	m, game := newTestModel(t)
	t0 := time.Unix(1000, 0)

	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = step(t, m, TickMsg(t0))
	if game.State() != floppy.StatePlaying {
		t.Fatalf("state = %v, expected Playing", game.State())
	}

	// Input edges are consumed by the tick that saw them.
	step(t, m, TickMsg(t0.Add(50*time.Millisecond)))
	if v := game.Player().Velocity; math.Abs(v-30) > 1e-6 {
		t.Errorf("velocity = %v, expected 30 after a 50ms fall", v)
	}
}

func TestModelPauseKey(t *testing.T) {
	m, game := newTestModel(t)
	t0 := time.Unix(1000, 0)

	m = step(t, m, runeKey('x'))
	m = step(t, m, TickMsg(t0))
	m = step(t, m, runeKey('p'))
	m = step(t, m, TickMsg(t0.Add(time.Second/60)))

	if game.State() != floppy.StatePaused {
		t.Errorf("state = %v, expected Paused", game.State())
	}
	if !strings.Contains(m.View(), string(shadeRune)) {
		t.Error("paused view should be shaded")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsHelpRow(t *testing.T) {
	m, _ := newTestModel(t)
	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
	if lines := strings.Count(m.View(), "\n"); lines < 29 {
		t.Errorf("view has %d line breaks, expected at least 29", lines)
	}
}

func TestModelMenuView(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()

	for _, want := range []string{"Floppy Dot!?", "Press SPACE to Play", "High Score: 0", "jump"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
	if strings.Contains(view, "pause") {
		t.Error("pause hint should be hidden on the title screen")
	}
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(t)

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	if filepath.Dir(path) != m.screenshotDir {
		t.Errorf("screenshot written to %s, expected %s", path, m.screenshotDir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read screenshot: %v", err)
	}
	if !strings.Contains(string(data), "Floppy Dot!?") {
		t.Error("screenshot should contain the title")
	}
}
