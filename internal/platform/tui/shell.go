package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/floppy-dot/internal/registry"
)

func init() {
	registry.Register(ShellName, func() registry.Shell { return Shell{} })
}

// ShellName is the registry name of the terminal shell.
const ShellName = "tui"

// Shell plays the game in the current terminal.
type Shell struct{}

// Name implements registry.Shell.
func (Shell) Name() string { return ShellName }

// Title implements registry.Shell.
func (Shell) Title() string { return "Terminal (Bubble Tea)" }

// Run implements registry.Shell. The terminal has no audio device, so the
// game keeps its silent music stream.
func (Shell) Run(ctx context.Context, opts registry.Options) error {
	game := opts.NewGame()
	err := Run(ctx, game, opts.Runtime, opts.ScreenshotDir, opts.Logger)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
