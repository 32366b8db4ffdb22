// Package replay records the inputs of a run and plays them back. Games are
// deterministic in their seed, tick rate, config and per-frame inputs, so
// that is all a replay stores.
package replay

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Recorder collects the inputs of one run, frame by frame.
type Recorder struct {
	gameID   string
	cfg      config.SnakeConfig
	seed     int64
	tickRate int
	player   string
	frame    uint64
	inputs   []storage.Input
}

// NewRecorder starts recording a run that was Reset with rc.
func NewRecorder(gameID string, cfg config.SnakeConfig, rc core.RuntimeConfig, player string) *Recorder {
	return &Recorder{
		gameID:   gameID,
		cfg:      cfg,
		seed:     rc.Seed,
		tickRate: rc.TickRate,
		player:   player,
	}
}

// Record must be called once per Step with the frame that was stepped.
// Platform-only actions (quit, restart) are not simulation input and are
// skipped.
func (r *Recorder) Record(in core.InputFrame) {
	r.frame++
	seq := 0
	for _, a := range in.Actions {
		if !simulated(a) {
			continue
		}
		r.inputs = append(r.inputs, storage.Input{Frame: r.frame, Seq: seq, Action: a.String()})
		seq++
	}
}

// Frames returns the number of recorded frames.
func (r *Recorder) Frames() uint64 {
	return r.frame
}

// Finish packages the recording with the final state.
func (r *Recorder) Finish(state core.GameState, reason string) (storage.Replay, error) {
	yml, err := config.Marshal(r.cfg)
	if err != nil {
		return storage.Replay{}, err
	}
	return storage.Replay{
		GameID:     r.gameID,
		Seed:       r.seed,
		TickRate:   r.tickRate,
		ConfigYAML: string(yml),
		Frames:     r.frame,
		Ticks:      state.Ticks,
		Score:      state.Score,
		Length:     state.Length,
		EndReason:  reason,
		Player:     r.player,
		Inputs:     append([]storage.Input(nil), r.inputs...),
	}, nil
}

func simulated(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionPause:
		return true
	}
	return false
}
