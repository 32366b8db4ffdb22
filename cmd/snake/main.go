// snake is a terminal Snake game with deterministic, replayable runs.
//
// Usage:
//
//	snake play [preset]      - Play (default preset: snake)
//	snake list               - List presets
//	snake serve              - Serve games over SSH and replays over HTTP
//	snake replays            - Browse recorded runs
//	snake replay <id>        - Verify or watch a recorded run
//	snake config             - Print the effective config
//
// Global flags:
//
//	--fps <rate>        - Frame rate (default: 60)
//	--seed <value>      - RNG seed for reproducible runs
//	--db <path>         - Replay database (default: ~/.snake/replays.db)
//	--config <path>     - Config YAML
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "snake",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `Snake on a 32x24 board. Every run is recorded and can be replayed
frame for frame from its seed and inputs.

Examples:
  snake play
  snake play snake_fixed --difficulty hard
  snake replays
  snake replay 12 --watch
  snake serve --ssh :23234 --http :8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.snake/replays.db", "Path to the replay database")
	pf.StringVar(&flagConfig, "config", "", "Path to a config YAML")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// resolveConfig loads the config, applies the difficulty and the preset's
// adjustments, and validates the result.
func resolveConfig(gameID, difficulty string) (config.SnakeConfig, error) {
	if !registry.Exists(gameID) {
		return config.SnakeConfig{}, fmt.Errorf("unknown game %q (run 'snake list')", gameID)
	}
	preset, err := config.ParseDifficulty(difficulty)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return registry.Resolve(gameID, cfg)
}

// openStoreOrWarn opens the replay database. Play continues without
// recording when it cannot be opened.
func openStoreOrWarn() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replay database, runs will not be recorded", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
