// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// TimingMode selects how simulation ticks are paced against frames.
type TimingMode string

const (
	TimingAccumulator TimingMode = "accumulator"
	TimingFixed       TimingMode = "fixed"
)

// SnakeConfig contains all tunables for a snake game.
type SnakeConfig struct {
	Timing TimingConfig `yaml:"timing"`
	Render RenderConfig `yaml:"render"`
}

// TimingConfig controls tick pacing and the speed ramp.
type TimingConfig struct {
	Mode               TimingMode    `yaml:"mode"`
	BaseTicksPerSecond float64       `yaml:"base_ticks_per_second"`
	SpeedRamp          float64       `yaml:"speed_ramp"` // ticks/sec added per apple
	MaxTicksPerSecond  float64       `yaml:"max_ticks_per_second"`
	FixedInterval      time.Duration `yaml:"fixed_interval"`
	MaxCatchUp         int           `yaml:"max_catch_up"` // ticks allowed in one frame
}

// RenderConfig controls the glyphs used for board tiles.
type RenderConfig struct {
	TileGlyph  string `yaml:"tile_glyph"`
	HeadGlyph  string `yaml:"head_glyph"`
	AppleGlyph string `yaml:"apple_glyph"`
	Gutter     bool   `yaml:"gutter"` // one blank column after every tile
}

// Validate checks that the config can drive a game.
func (c SnakeConfig) Validate() error {
	t := c.Timing
	switch t.Mode {
	case TimingAccumulator:
		if t.BaseTicksPerSecond <= 0 {
			return fmt.Errorf("%w: base_ticks_per_second must be positive, got %v", ErrInvalid, t.BaseTicksPerSecond)
		}
		if t.SpeedRamp < 0 {
			return fmt.Errorf("%w: speed_ramp must not be negative, got %v", ErrInvalid, t.SpeedRamp)
		}
		if t.MaxTicksPerSecond > 0 && t.MaxTicksPerSecond < t.BaseTicksPerSecond {
			return fmt.Errorf("%w: max_ticks_per_second %v is below base_ticks_per_second %v",
				ErrInvalid, t.MaxTicksPerSecond, t.BaseTicksPerSecond)
		}
	case TimingFixed:
		if t.FixedInterval <= 0 {
			return fmt.Errorf("%w: fixed_interval must be positive, got %v", ErrInvalid, t.FixedInterval)
		}
	default:
		return fmt.Errorf("%w: unknown timing mode %q", ErrInvalid, t.Mode)
	}
	if t.MaxCatchUp < 1 {
		return fmt.Errorf("%w: max_catch_up must be at least 1, got %d", ErrInvalid, t.MaxCatchUp)
	}
	if c.Render.TileGlyph == "" || c.Render.HeadGlyph == "" || c.Render.AppleGlyph == "" {
		return fmt.Errorf("%w: render glyphs must not be empty", ErrInvalid)
	}
	return nil
}
