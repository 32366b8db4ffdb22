package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndLoadReplay(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	in := Replay{
		GameID:     "snake",
		Seed:       42,
		TickRate:   60,
		ConfigYAML: "timing:\n  mode: accumulator\n",
		Frames:     900,
		Ticks:      150,
		Score:      14,
		Length:     5,
		EndReason:  EndLost,
		Player:     "alice",
		Inputs: []Input{
			{Frame: 30, Seq: 0, Action: "down"},
			{Frame: 12, Seq: 1, Action: "left"},
			{Frame: 12, Seq: 0, Action: "up"},
		},
	}

	id, err := store.SaveReplay(ctx, in)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	got, err := store.Replay(ctx, id)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if got.GameID != "snake" || got.Seed != 42 || got.Frames != 900 || got.Score != 14 || got.Player != "alice" {
		t.Errorf("replay = %+v", got)
	}
	if got.ConfigYAML != in.ConfigYAML {
		t.Errorf("config yaml = %q", got.ConfigYAML)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	// Inputs come back ordered by frame, then seq
	want := []string{"up", "left", "down"}
	if len(got.Inputs) != len(want) {
		t.Fatalf("inputs = %+v", got.Inputs)
	}
	for i, action := range want {
		if got.Inputs[i].Action != action {
			t.Errorf("input %d = %+v, expected %s", i, got.Inputs[i], action)
		}
	}
}

func TestReplayNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Replay(context.Background(), 999); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("Replay(999) err = %v, expected ErrReplayNotFound", err)
	}
	if err := store.DeleteReplay(context.Background(), 999); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("DeleteReplay(999) err = %v, expected ErrReplayNotFound", err)
	}
}

func TestListReplays(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i, game := range []string{"snake", "snake_fixed", "snake", "snake"} {
		_, err := store.SaveReplay(ctx, Replay{GameID: game, Seed: int64(i), TickRate: 60, Score: i, EndReason: EndQuit})
		if err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}

	all, err := store.ListReplays(ctx, "", 10)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 replays, got %d", len(all))
	}
	// Newest first
	if all[0].Seed != 3 {
		t.Errorf("first replay seed = %d, expected newest (3)", all[0].Seed)
	}

	snakeOnly, err := store.ListReplays(ctx, "snake", 2)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(snakeOnly) != 2 {
		t.Errorf("limit not applied: got %d", len(snakeOnly))
	}
	for _, r := range snakeOnly {
		if r.GameID != "snake" {
			t.Errorf("filter leaked %q", r.GameID)
		}
	}
}

func TestDeleteReplayCascades(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	id, err := store.SaveReplay(ctx, Replay{
		GameID: "snake", TickRate: 60, EndReason: EndLost,
		Inputs: []Input{{Frame: 1, Action: "up"}},
	})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if err := store.DeleteReplay(ctx, id); err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}

	var n int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM replay_inputs").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("%d orphaned inputs after delete", n)
	}
}
