package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/floppy-dot/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.floppydot/config.yaml or pass it with --config to change the game.

Example:
  floppydot config > ~/.floppydot/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
