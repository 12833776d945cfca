package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/floppy-dot/internal/core"
	"github.com/vovakirdan/floppy-dot/internal/games/floppy"
)

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game          *floppy.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	keys          KeyMap
	help          help.Model
	inputFrame    core.InputFrame
	lastTick      time.Time
	screenshotDir string
	logger        *log.Logger
	quitting      bool
}

// NewModel creates a model for game. The screen keeps one row for the help line.
func NewModel(game *floppy.Game, cfg core.RuntimeConfig, screenshotDir string, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		inputFrame:    core.NewInputFrame(),
		screenshotDir: screenshotDir,
		logger:        logger,
	}
}

func playRows(h int) int {
	return max(h-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouse(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg, &m.inputFrame) {
	case KeyQuit:
		m.quitting = true
		return m, tea.Quit
	case KeyScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	}
	return m, nil
}

// handleTick advances the game by the time since the previous tick.
// The first tick assumes the nominal frame time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.game.Update(dt, m.inputFrame)
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// draw rasterises the current draw list into the screen buffer.
func (m Model) draw() {
	window := m.game.Config().Window
	Rasterize(m.game.DrawList(), core.Vec2{X: window.Width, Y: window.Height}, m.screen)
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.draw()

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("floppydot_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()

	keys := m.keys
	keys.Pause.SetEnabled(!m.game.Snapshot().InMenu)
	return RenderScreen(m.screen) + "\n" + m.help.View(keys)
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(ctx context.Context, game *floppy.Game, cfg core.RuntimeConfig, screenshotDir string, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, screenshotDir, logger),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
