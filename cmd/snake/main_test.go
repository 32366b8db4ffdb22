package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagConfigDiff = ""
		flagConfig = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, id := range []string{"snake", "snake_fixed"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q:\n%s", id, out)
		}
	}
}

func TestConfigCommandAppliesPreset(t *testing.T) {
	out, err := execute(t, "config", "snake_fixed", "--difficulty", "hard")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg, err := config.Parse([]byte(out))
	if err != nil {
		t.Fatalf("output is not a valid config: %v\n%s", err, out)
	}
	if cfg.Timing.Mode != config.TimingFixed {
		t.Errorf("Mode = %q, want fixed", cfg.Timing.Mode)
	}
	def := config.DefaultSnakeConfig()
	if cfg.Timing.FixedInterval >= def.Timing.FixedInterval {
		t.Errorf("hard FixedInterval = %v, want below %v", cfg.Timing.FixedInterval, def.Timing.FixedInterval)
	}
}

func TestConfigCommandRejectsUnknownGame(t *testing.T) {
	if _, err := execute(t, "config", "tetris"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestReplayCommandMissing(t *testing.T) {
	db := filepath.Join(t.TempDir(), "r.db")
	if _, err := execute(t, "--db", db, "replay", "7"); err == nil {
		t.Error("expected not-found error")
	}
	flagDBPath = "~/.snake/replays.db"
}
