// floppydot is Floppy Dot: keep a falling dot alive by jumping through the
// gaps of an endless row of pillars.
//
// Usage:
//
//	floppydot play           - Play (terminal by default, --shell window for a native window)
//	floppydot scores         - Show the best rounds and the high score
//	floppydot serve          - Start SSH server for remote play
//	floppydot shells         - List available shells
//	floppydot config         - Print the default configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Config file (YAML or TOML)
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--db <path>            - Round history database
//	--highscore <path>     - High score file
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	// Import shells to register them
	_ "github.com/vovakirdan/floppy-dot/internal/platform/tui"
	_ "github.com/vovakirdan/floppy-dot/internal/platform/window"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagHighScore  string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "floppydot",
	Short: "Floppy Dot - a one-button arcade game",
	Long: `Floppy Dot drops a dot under gravity. Jump to keep it inside the
window and steer it through the gaps between the pillars. Every pillar
passed scores a point; touching one ends the round.

Available commands:
  play     - Play the game
  scores   - Show the best rounds and the high score
  serve    - Start SSH server for remote play
  shells   - List available shells
  config   - Print the default configuration

Environment (also read from ./.env):
  FLOPPYDOT_CONFIG     - default for --config
  FLOPPYDOT_DB         - default for --db
  FLOPPYDOT_HIGHSCORE  - default for --highscore

Examples:
  floppydot play
  floppydot play --shell window
  floppydot play --difficulty hard
  floppydot serve --ssh :2222
  floppydot scores`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadEnv,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&flagDBPath, "db", "", "Path to the round history database (default from config)")
	flags.StringVar(&flagHighScore, "highscore", "", "Path to the high score file (default from config)")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFile, "log-file", "~/.floppydot/floppydot.log", "Log file for the play command")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shellsCmd)
	rootCmd.AddCommand(configCmd)
}
