package replay

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Script feeds recorded inputs back one frame at a time.
type Script struct {
	inputs []storage.Input
	pos    int
	frame  uint64
	frames uint64
}

// NewScript creates a script over inputs sorted by frame and seq.
func NewScript(inputs []storage.Input, frames uint64) *Script {
	return &Script{inputs: inputs, frames: frames}
}

// Next returns the input frame for the next frame number.
func (s *Script) Next() core.InputFrame {
	s.frame++
	in := core.NewInputFrame()
	for s.pos < len(s.inputs) && s.inputs[s.pos].Frame <= s.frame {
		if s.inputs[s.pos].Frame == s.frame {
			in.Push(core.ParseAction(s.inputs[s.pos].Action))
		}
		s.pos++
	}
	return in
}

// Done reports whether every recorded frame has been played.
func (s *Script) Done() bool {
	return s.frame >= s.frames
}

// Frame returns the number of frames played so far.
func (s *Script) Frame() uint64 {
	return s.frame
}

// Session is a game rebuilt from a replay, ready to be stepped.
type Session struct {
	Game    registry.Game
	Script  *Script
	Runtime core.RuntimeConfig
}

// Prepare rebuilds the game exactly as it was when the replay was recorded.
// Screen size does not affect the simulation; w and h only size the view.
func Prepare(r *storage.Replay, w, h int) (*Session, error) {
	cfg, err := config.Parse([]byte(r.ConfigYAML))
	if err != nil {
		return nil, fmt.Errorf("replay: stored config: %w", err)
	}
	game, err := registry.Create(r.GameID, cfg)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	rc := core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: r.TickRate, Seed: r.Seed}
	game.Reset(rc)
	return &Session{
		Game:    game,
		Script:  NewScript(r.Inputs, r.Frames),
		Runtime: rc,
	}, nil
}

// Result is the outcome of a headless re-simulation.
type Result struct {
	State      core.GameState
	Frames     uint64
	Mismatches []string
}

// Matches reports whether the re-simulation reproduced the stored outcome.
func (r Result) Matches() bool {
	return len(r.Mismatches) == 0
}

// Simulate replays r without a terminal and compares the final state with
// the recorded one.
func Simulate(r *storage.Replay) (Result, error) {
	s, err := Prepare(r, 0, 0)
	if err != nil {
		return Result{}, err
	}

	for !s.Script.Done() {
		s.Game.Step(s.Script.Next())
	}

	res := Result{State: s.Game.State(), Frames: s.Script.Frame()}
	if res.State.Score != r.Score {
		res.Mismatches = append(res.Mismatches, fmt.Sprintf("score %d, recorded %d", res.State.Score, r.Score))
	}
	if res.State.Length != r.Length {
		res.Mismatches = append(res.Mismatches, fmt.Sprintf("length %d, recorded %d", res.State.Length, r.Length))
	}
	if res.State.Ticks != r.Ticks {
		res.Mismatches = append(res.Mismatches, fmt.Sprintf("ticks %d, recorded %d", res.State.Ticks, r.Ticks))
	}
	if r.EndReason == storage.EndLost && !res.State.GameOver {
		res.Mismatches = append(res.Mismatches, "run did not end in a loss")
	}
	return res, nil
}
