package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration: ten ticks per
// second rising by 0.1 per apple.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Timing: TimingConfig{
			Mode:               TimingAccumulator,
			BaseTicksPerSecond: 10,
			SpeedRamp:          0.1,
			MaxTicksPerSecond:  30,
			FixedInterval:      80 * time.Millisecond,
			MaxCatchUp:         4,
		},
		Render: RenderConfig{
			TileGlyph:  "█",
			HeadGlyph:  "█",
			AppleGlyph: "●",
			Gutter:     true,
		},
	}
}

// FixedStepConfig returns the defaults switched to an 80ms fixed step with
// no speed ramp.
func FixedStepConfig() SnakeConfig {
	cfg := DefaultSnakeConfig()
	cfg.Timing.Mode = TimingFixed
	cfg.Timing.SpeedRamp = 0
	return cfg
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
