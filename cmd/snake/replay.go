package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagWatch  bool
	flagDelete bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Verify or watch a recorded run",
	Long: `Re-simulate a recorded run from its seed and inputs and check that it
reproduces the stored score, length and tick count. With --watch the run is
played back in the terminal instead.

Examples:
  snake replay 12
  snake replay 12 --watch
  snake replay 12 --delete`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Play the run back in the terminal")
	replayCmd.Flags().BoolVar(&flagDelete, "delete", false, "Delete the run")
}

func runReplay(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return fmt.Errorf("invalid replay id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagDelete:
		if err := store.DeleteReplay(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted replay #%d\n", id)
		return nil
	case flagWatch:
		return watchReplay(cmd, store, id)
	}

	r, err := store.Replay(cmd.Context(), id)
	if err != nil {
		return err
	}
	res, err := replay.Simulate(r)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Replay #%d  %s  seed %d  %d frames at %d fps\n", r.ID, r.GameID, r.Seed, r.Frames, r.TickRate)
	fmt.Fprintf(w, "Recorded:   score %d  length %d  ticks %d  (%s)\n", r.Score, r.Length, r.Ticks, r.EndReason)
	fmt.Fprintf(w, "Simulated:  score %d  length %d  ticks %d\n", res.State.Score, res.State.Length, res.State.Ticks)
	if !res.Matches() {
		for _, m := range res.Mismatches {
			fmt.Fprintf(w, "  mismatch: %s\n", m)
		}
		return errors.New("replay does not reproduce the recorded run")
	}
	fmt.Fprintln(w, "OK")
	return nil
}
