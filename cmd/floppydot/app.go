package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/floppy-dot/internal/config"
	"github.com/vovakirdan/floppy-dot/internal/core"
	"github.com/vovakirdan/floppy-dot/internal/games/floppy"
	"github.com/vovakirdan/floppy-dot/internal/highscore"
	"github.com/vovakirdan/floppy-dot/internal/registry"
	"github.com/vovakirdan/floppy-dot/internal/storage"
)

// envDefaults maps flags to the environment variables that can set them.
var envDefaults = map[string]string{
	"config":    "FLOPPYDOT_CONFIG",
	"db":        "FLOPPYDOT_DB",
	"highscore": "FLOPPYDOT_HIGHSCORE",
}

// loadEnv reads ./.env and fills unset flags from the environment.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot read .env: %w", err)
	}

	for flag, env := range envDefaults {
		value, ok := os.LookupEnv(env)
		if !ok || cmd.Flags().Changed(flag) {
			continue
		}
		if err := cmd.Flags().Set(flag, value); err != nil {
			return fmt.Errorf("invalid %s: %w", env, err)
		}
	}
	return nil
}

// app is everything a command needs to build games.
type app struct {
	cfg     config.FloppyConfig
	preset  config.DifficultyPreset
	logger  *log.Logger
	closers []io.Closer

	scores  *highscore.FileStore
	history *storage.Store // nil when the database cannot be opened
}

// newApp loads the configuration and opens the stores. Logs go to out.
func newApp(out io.Writer) (*app, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "floppydot",
		Level:           level,
	})

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, preset)
	}

	a := &app{cfg: cfg, preset: preset, logger: logger}

	scorePath, err := config.ExpandPath(firstNonEmpty(flagHighScore, cfg.Storage.HighScorePath))
	if err != nil {
		return nil, err
	}
	a.scores = highscore.NewFileStore(scorePath)

	history, err := storage.Open(firstNonEmpty(flagDBPath, cfg.Storage.DBPath))
	if err != nil {
		logger.Warn("round history disabled", "error", err)
	} else {
		a.history = history
		a.closers = append(a.closers, history)
	}

	return a, nil
}

// openLogFile returns the writer for the play command's log.
func openLogFile(path string) (io.WriteCloser, error) {
	path, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// Close releases the stores.
func (a *app) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
}

// runtime returns the shell settings from the global flags.
func (a *app) runtime(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// gameFactory builds games wired to the app's stores. Each call returns a
// fresh game; a fixed --seed gives every game the same pillar layout.
func (a *app) gameFactory(scores floppy.HighScoreStore, rt core.RuntimeConfig) registry.GameFactory {
	return func(extra ...floppy.Option) *floppy.Game {
		opts := []floppy.Option{
			floppy.WithHighScoreStore(scores),
			floppy.WithLogger(a.logger),
			floppy.WithPreset(a.preset),
		}
		if a.history != nil {
			opts = append(opts, floppy.WithHistory(a.history))
		}
		return floppy.New(a.cfg, rt, append(opts, extra...)...)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func screenshotDir() string {
	dir, err := config.ExpandPath("~/.floppydot/screenshots")
	if err != nil {
		return filepath.Join(os.TempDir(), "floppydot-screenshots")
	}
	return dir
}
