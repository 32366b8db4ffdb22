package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/classic"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagDifficulty string
	flagNoRecord   bool
	flagKeepOpen   bool
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a game",
	Long: `Start a game with the given preset (default: snake).

Controls:
  Arrows/WASD  - Steer
  Space/P      - Pause
  R            - Restart after game over (with --keep-open)
  Q/Esc        - Quit

Difficulty options:
  easy   - Slower start
  normal - Config speed
  hard   - Faster start

Examples:
  snake play
  snake play snake_fixed
  snake play --difficulty hard --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record the run")
	playCmd.Flags().BoolVar(&flagKeepOpen, "keep-open", false, "Stay on the Game Over screen after a loss so R can restart")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := classic.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	cfg, err := resolveConfig(gameID, flagDifficulty)
	if err != nil {
		return err
	}
	game, err := registry.Create(gameID, cfg)
	if err != nil {
		return err
	}

	width, height := terminalSize()

	var store *storage.Store
	if !flagNoRecord {
		store = openStoreOrWarn()
	}
	if store != nil {
		defer store.Close()
	}

	out, err := tui.Run(game, tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:    store,
		Logger:   logger,
		Player:   playerName(),
		KeepOpen: flagKeepOpen,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	printOutcome(cmd, out)
	return nil
}

func printOutcome(cmd *cobra.Command, out tui.Outcome) {
	w := cmd.OutOrStdout()
	if out.State.GameOver {
		fmt.Fprintln(w, "You lose.")
	}
	fmt.Fprintf(w, "Score: %d  Length: %d  Ticks: %d\n", out.State.Score, out.State.Length, out.State.Ticks)
	if out.ReplayID != 0 {
		fmt.Fprintf(w, "Replay saved as #%d (snake replay %d --watch)\n", out.ReplayID, out.ReplayID)
	}
}

func terminalSize() (int, int) {
	def := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return def.ScreenW, def.ScreenH
}

func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
