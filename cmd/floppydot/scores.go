package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floppy-dot/internal/highscore"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best rounds and the high score",
	Long: `Display the top rounds from the history database together with the
high score file.

Examples:
  floppydot scores
  floppydot scores --limit 25
  floppydot scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history and reset the high score to 0")
}

func runScores(cmd *cobra.Command, _ []string) error {
	a, err := newApp(os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if a.history != nil {
			if err := a.history.ClearScores(); err != nil {
				return err
			}
		}
		if err := a.scores.Save(0); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	best, err := bestScore(a)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Floppy Dot - High Scores")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "High score: %d (%s)\n", best, a.scores.Path())

	if a.history == nil {
		return nil
	}

	stats, err := a.history.Stats()
	if err != nil {
		return err
	}
	entries, err := a.history.TopScores(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	if len(entries) == 0 {
		fmt.Fprintln(out, "No rounds recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'floppydot play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %-10s  %s\n", "Rank", "Score", "Time", "Difficulty", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %-10s  %s\n", "----", "-----", "----", "----------", "----")
	for i, e := range entries {
		seconds := float64(e.Ticks) / float64(max(flagFPS, 1))
		fmt.Fprintf(out, "  %-4d  %-6d  %-8s  %-10s  %s\n",
			i+1, e.Score, fmt.Sprintf("%.1fs", seconds), e.Difficulty, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Rounds: %d  Average: %.1f  Last played: %s\n",
		stats.Rounds, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}

// bestScore reads the high score file and checks it against the history.
// A file that lags behind the recorded rounds is reported and the history
// value is shown instead.
func bestScore(a *app) (int, error) {
	best, err := a.scores.Load()
	if errors.Is(err, highscore.ErrMalformed) {
		a.logger.Warn("high score file is malformed, showing 0", "path", a.scores.Path())
	} else if err != nil {
		return 0, err
	}

	if a.history == nil {
		return best, nil
	}
	recorded, err := a.history.HighScore()
	if err != nil {
		return 0, err
	}
	if recorded > best {
		a.logger.Warn("high score file is behind the round history",
			"file", best, "history", recorded, "path", a.scores.Path())
		return recorded, nil
	}
	return best, nil
}
