package config

import (
	"fmt"
	"time"
)

// DifficultyPreset is a named starting speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty accepts "" (meaning no preset) or one of the preset names.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, name)
	}
}

// speedFactor scales both the base speed and the fixed interval.
func speedFactor(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.7
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ApplyPreset adjusts starting speed for the preset. An empty preset leaves
// the config unchanged.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	f := speedFactor(preset)
	cfg.Timing.BaseTicksPerSecond *= f
	if cfg.Timing.MaxTicksPerSecond > 0 && cfg.Timing.MaxTicksPerSecond < cfg.Timing.BaseTicksPerSecond {
		cfg.Timing.MaxTicksPerSecond = cfg.Timing.BaseTicksPerSecond
	}
	cfg.Timing.FixedInterval = time.Duration(float64(cfg.Timing.FixedInterval) / f)
}
