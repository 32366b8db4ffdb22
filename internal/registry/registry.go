// Package registry keeps the game presets the platform can start.
// Presets register themselves in init() functions, so commands can list and
// create games without importing every implementation.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is what the platform drives: one Step per frame, one Render per view.
// Games contain pure logic with no Bubble Tea dependency.
type Game interface {
	// ID returns the preset identifier (e.g., "snake", "snake_fixed").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game from the RuntimeConfig seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one frame with the actions collected during it.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current summary (score, length, game over, paused).
	State() core.GameState
}

// Preset describes a registered game variant.
type Preset struct {
	ID          string
	Title       string
	Description string
	// Apply adjusts the loaded config for this variant. May be nil.
	Apply func(cfg *config.SnakeConfig)
}

// GameInfo contains metadata about a registered preset.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory builds a game from a validated config.
type Factory func(cfg config.SnakeConfig) Game

type entry struct {
	preset  Preset
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a preset. Panics if the ID is already registered.
func Register(p Preset, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[p.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", p.ID))
	}
	entries[p.ID] = entry{preset: p, factory: f}
}

// List returns all registered presets, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, GameInfo{
			ID:          e.preset.ID,
			Title:       e.preset.Title,
			Description: e.preset.Description,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Resolve returns cfg with the preset's adjustments applied and validated.
func Resolve(id string, cfg config.SnakeConfig) (config.SnakeConfig, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return cfg, fmt.Errorf("registry: unknown game %q", id)
	}
	if e.preset.Apply != nil {
		e.preset.Apply(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("registry: %s: %w", id, err)
	}
	return cfg, nil
}

// Create resolves the config for id and builds a new game.
func Create(id string, cfg config.SnakeConfig) (Game, error) {
	resolved, err := Resolve(id, cfg)
	if err != nil {
		return nil, err
	}
	mu.RLock()
	f := entries[id].factory
	mu.RUnlock()
	return f(resolved), nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
