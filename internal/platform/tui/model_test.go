package tui

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/classic"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	return newTestModelWith(t, store, false)
}

func newTestModelWith(t *testing.T, store *storage.Store, keepOpen bool) Model {
	t.Helper()
	cfg, err := registry.Resolve(classic.IDClassic, config.DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	game, err := registry.Create(classic.IDClassic, cfg)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return NewModel(game, Options{
		Config:   cfg,
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 11},
		Store:    store,
		Logger:   quietLogger(),
		Player:   "tester",
		KeepOpen: keepOpen,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got
}

// runUntilLost ticks until the snake, heading right from the start, leaves
// the board.
func runUntilLost(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 2000 && !m.Outcome().State.GameOver; i++ {
		m = update(t, m, TickMsg{})
	}
	if !m.Outcome().State.GameOver {
		t.Fatal("game never ended")
	}
	return m
}

func TestModelTicksAdvanceGame(t *testing.T) {
	m := newTestModel(t, nil)
	for range 60 {
		m = update(t, m, TickMsg{})
	}
	if m.Outcome().State.Ticks == 0 {
		t.Error("expected simulation ticks after one second of frames")
	}
}

func TestModelPauseKey(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{})
	if !m.Outcome().State.Paused {
		t.Fatal("expected paused after p")
	}

	ticks := m.Outcome().State.Ticks
	for range 30 {
		m = update(t, m, TickMsg{})
	}
	if m.Outcome().State.Ticks != ticks {
		t.Errorf("ticks advanced while paused: %d -> %d", ticks, m.Outcome().State.Ticks)
	}

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{})
	if m.Outcome().State.Paused {
		t.Error("expected running after second p")
	}
}

func TestModelQuitsOnLoss(t *testing.T) {
	m := newTestModel(t, nil)
	var cmd tea.Cmd
	for i := 0; i < 2000 && !m.Outcome().State.GameOver; i++ {
		var next tea.Model
		next, cmd = m.Update(TickMsg{})
		m = next.(Model)
	}
	if !m.Outcome().State.GameOver {
		t.Fatal("game never ended")
	}
	if cmd == nil {
		t.Fatal("expected a command on the losing tick")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("losing tick should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after the program quits")
	}
}

func TestModelRestartIgnoredWithoutKeepOpen(t *testing.T) {
	m := runUntilLost(t, newTestModel(t, nil))
	m = update(t, m, runeKey('r'))
	if !m.Outcome().State.GameOver {
		t.Error("restart must need KeepOpen")
	}
}

func TestModelRestartOnlyAfterLoss(t *testing.T) {
	m := newTestModelWith(t, nil, true)
	for range 30 {
		m = update(t, m, TickMsg{})
	}
	before := m.Outcome().State.Ticks
	m = update(t, m, runeKey('r'))
	if m.Outcome().State.Ticks != before {
		t.Error("restart must be ignored while running")
	}

	m = runUntilLost(t, m)
	m = update(t, m, runeKey('r'))
	st := m.Outcome().State
	if st.GameOver || st.Ticks != 0 || st.Length != 1 || st.Score != 0 {
		t.Errorf("after restart state = %+v, want fresh game", st)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should quit")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelRecordsReplayOnLoss(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := newTestModel(t, store)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = runUntilLost(t, m)

	out := m.Outcome()
	if out.ReplayID == 0 {
		t.Fatal("expected a saved replay")
	}

	r, err := store.Replay(context.Background(), out.ReplayID)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if r.EndReason != storage.EndLost || r.Player != "tester" || r.Seed != 11 {
		t.Errorf("stored replay = %+v", r)
	}
	if r.Score != out.State.Score || r.Ticks != out.State.Ticks {
		t.Errorf("stored outcome score=%d ticks=%d, want %d/%d", r.Score, r.Ticks, out.State.Score, out.State.Ticks)
	}

	res, err := replay.Simulate(r)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if !res.Matches() {
		t.Errorf("replay does not reproduce the run: %v", res.Mismatches)
	}

	// Quitting after the loss must not store the run twice.
	_ = update(t, m, runeKey('q'))
	list, err := store.ListReplays(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("ListReplays: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("got %d replays, want 1", len(list))
	}
}

func TestWatchModelFollowsScript(t *testing.T) {
	r := storage.Replay{GameID: classic.IDClassic, Seed: 5, TickRate: 60, Frames: 120}
	yml, err := config.Marshal(config.DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	r.ConfigYAML = string(yml)

	sess, err := replay.Prepare(&r, 80, 30)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	m := NewWatchModel(sess, 9, quietLogger())

	// Steering keys are ignored while watching.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	for range 200 {
		m = update(t, m, TickMsg{})
	}
	if !sess.Script.Done() {
		t.Error("script should be done")
	}
	if got := sess.Script.Frame(); got != 120 {
		t.Errorf("played %d frames, want 120", got)
	}
	if !strings.Contains(m.View(), "replay #9") {
		t.Error("footer should name the replay")
	}
}

func TestViewFooterNeedsRoom(t *testing.T) {
	m := newTestModel(t, nil)
	if !strings.Contains(m.View(), "pause") {
		t.Error("expected help footer at 30 rows")
	}
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 27})
	if strings.Contains(m.View(), "pause") {
		t.Error("footer should be hidden at 27 rows")
	}
}
