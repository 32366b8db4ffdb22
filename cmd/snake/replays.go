package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagReplaysGame  string
	flagReplaysLimit int
	flagReplaysPlain bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse recorded runs",
	Long: `List recorded runs, newest first. On a terminal this opens an
interactive table; press enter to watch the selected run.

Examples:
  snake replays
  snake replays --game snake_fixed --limit 5 --plain`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

func init() {
	replaysCmd.Flags().StringVar(&flagReplaysGame, "game", "", "Only show runs of this preset")
	replaysCmd.Flags().IntVar(&flagReplaysLimit, "limit", 20, "Maximum runs to print in plain mode")
	replaysCmd.Flags().BoolVar(&flagReplaysPlain, "plain", false, "Print a plain table even on a terminal")
}

func runReplays(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if !flagReplaysPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := terminalSize()
		id, err := tui.Browse(store, width, height)
		if err != nil {
			return fmt.Errorf("replay browser: %w", err)
		}
		if id == 0 {
			return nil
		}
		return watchReplay(cmd, store, id)
	}

	replays, err := store.ListReplays(cmd.Context(), flagReplaysGame, flagReplaysLimit)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if len(replays) == 0 {
		fmt.Fprintln(w, "No replays recorded yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tGAME\tPLAYER\tSCORE\tLEN\tTICKS\tEND\tDATE")
	for _, r := range replays {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			r.ID, r.GameID, r.Player, r.Score, r.Length, r.Ticks, r.EndReason,
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func watchReplay(cmd *cobra.Command, store *storage.Store, id int64) error {
	r, err := store.Replay(cmd.Context(), id)
	if err != nil {
		return err
	}
	width, height := terminalSize()
	sess, err := replay.Prepare(r, width, height)
	if err != nil {
		return err
	}
	return tui.Watch(sess, id, logger)
}
