package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/floppy-dot/internal/platform/tui"
	"github.com/vovakirdan/floppy-dot/internal/registry"
)

var flagShell string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Floppy Dot",
	Long: `Start the game on the title screen.

Controls:
  any key / click  - Start from the title screen
  Space/Up/W/click - Jump
  P                - Pause / resume
  Ctrl+S           - Screenshot (terminal shell)
  Q/Ctrl+C         - Quit (terminal shell; close the window otherwise)

Difficulty options:
  easy   - Pillars start at base speed and speed up with the score
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - Constant speed

Examples:
  floppydot play
  floppydot play --shell window
  floppydot play --difficulty hard
  floppydot play --config ./my-floppy.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagShell, "shell", tui.ShellName, "Shell to play in (see 'floppydot shells')")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	shell, err := registry.Create(flagShell)
	if err != nil {
		return fmt.Errorf("%w; run 'floppydot shells' to see available shells", err)
	}

	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	a, err := newApp(logFile)
	if err != nil {
		return err
	}
	defer a.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rt := a.runtime(width, height)

	a.logger.Info("starting", "shell", shell.Name(), "difficulty", a.preset, "highscore", a.scores.Path())

	return shell.Run(cmd.Context(), registry.Options{
		Runtime:       rt,
		MusicPath:     a.cfg.Audio.MusicPath,
		ScreenshotDir: screenshotDir(),
		Logger:        a.logger,
		NewGame:       a.gameFactory(a.scores, rt),
	})
}
