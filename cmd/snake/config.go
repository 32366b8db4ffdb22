package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/classic"
)

var flagConfigDiff string

var configCmd = &cobra.Command{
	Use:   "config [preset]",
	Short: "Print the effective config as YAML",
	Long: `Print the config a game would start with: the first config file found
(--config, ~/.snake/configs/snake.yaml, ./configs/snake.yaml, or the built-in
default) with the difficulty and preset adjustments applied.

Examples:
  snake config
  snake config snake_fixed --difficulty hard
  snake config > ~/.snake/configs/snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigDiff, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := classic.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}
	cfg, err := resolveConfig(gameID, flagConfigDiff)
	if err != nil {
		return err
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
