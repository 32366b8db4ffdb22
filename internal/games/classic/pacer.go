package classic

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Pacer converts frame time into simulation ticks.
//
// In accumulator mode the tick rate starts at the base speed and rises with
// every SpeedUp; in fixed mode every tick takes the same interval. Frame time
// is fed in by the caller, so the same frame sequence always yields the same
// ticks.
type Pacer struct {
	timing config.TimingConfig
	tps    float64
	acc    time.Duration
}

// NewPacer creates a pacer at the configured base speed.
func NewPacer(timing config.TimingConfig) *Pacer {
	p := &Pacer{timing: timing}
	p.Reset()
	return p
}

// Reset drops any stored time and returns to the base speed.
func (p *Pacer) Reset() {
	p.tps = p.timing.BaseTicksPerSecond
	p.acc = 0
}

// Interval returns the time one tick currently takes.
func (p *Pacer) Interval() time.Duration {
	if p.timing.Mode == config.TimingFixed {
		return p.timing.FixedInterval
	}
	return time.Duration(float64(time.Second) / p.tps)
}

// TicksPerSecond returns the current logical speed.
func (p *Pacer) TicksPerSecond() float64 {
	if p.timing.Mode == config.TimingFixed {
		return float64(time.Second) / float64(p.timing.FixedInterval)
	}
	return p.tps
}

// Feed adds one frame's worth of time. Backlog beyond MaxCatchUp ticks is
// discarded so a stalled frame cannot burst the snake across the board.
func (p *Pacer) Feed(dt time.Duration) {
	p.acc += dt
	if limit := time.Duration(p.timing.MaxCatchUp) * p.Interval(); p.acc > limit {
		p.acc = limit
	}
}

// Ready consumes one tick's worth of stored time if available.
func (p *Pacer) Ready() bool {
	iv := p.Interval()
	if p.acc < iv {
		return false
	}
	p.acc -= iv
	return true
}

// SpeedUp applies the per-apple ramp. No-op in fixed mode.
func (p *Pacer) SpeedUp() {
	if p.timing.Mode == config.TimingFixed {
		return
	}
	p.tps += p.timing.SpeedRamp
	if p.timing.MaxTicksPerSecond > 0 && p.tps > p.timing.MaxTicksPerSecond {
		p.tps = p.timing.MaxTicksPerSecond
	}
}
