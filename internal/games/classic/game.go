// Package classic implements the classic Snake game on top of the snake
// state model: one apple, a growing body, and a tick rate that ramps up as
// apples are eaten.
package classic

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Preset IDs.
const (
	IDClassic = "snake"
	IDFixed   = "snake_fixed"
)

var headings = map[core.Action]snake.Heading{
	core.ActionUp:    snake.HeadingUp,
	core.ActionDown:  snake.HeadingDown,
	core.ActionLeft:  snake.HeadingLeft,
	core.ActionRight: snake.HeadingRight,
}

// Game owns the snake model, the apple, the score and the pacer. It is
// driven one frame at a time by the platform loop.
type Game struct {
	id    string
	title string
	cfg   config.SnakeConfig

	rng         *rand.Rand
	model       *snake.Model
	pacer       *Pacer
	apple       snake.Position
	score       int
	applesEaten int
	frame       uint64
	ticks       uint64
	frameDt     time.Duration

	screenW int
	screenH int
}

// New creates a game with the given preset identity and config. Call Reset
// before the first Step.
func New(id, title string, cfg config.SnakeConfig) *Game {
	g := &Game{id: id, title: title, cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

func init() {
	registry.Register(registry.Preset{
		ID:          IDClassic,
		Title:       "Snake",
		Description: "Speed starts at the base rate and ramps up with every apple",
	}, func(cfg config.SnakeConfig) registry.Game {
		return New(IDClassic, "Snake", cfg)
	})
	registry.Register(registry.Preset{
		ID:          IDFixed,
		Title:       "Snake (Fixed Step)",
		Description: "One move every fixed interval, no speed ramp",
		Apply: func(cfg *config.SnakeConfig) {
			cfg.Timing.Mode = config.TimingFixed
			cfg.Timing.SpeedRamp = 0
		},
	}, func(cfg config.SnakeConfig) registry.Game {
		return New(IDFixed, "Snake (Fixed Step)", cfg)
	})
}

// ID returns the preset identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Config returns the config the game was built with.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// Reset starts a fresh game: a one-cell snake heading right and a new apple.
func (g *Game) Reset(rc core.RuntimeConfig) {
	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.model = snake.NewModel(snake.DefaultStart, snake.DefaultHeading)
	g.pacer = NewPacer(g.cfg.Timing)
	g.apple = snake.PlaceApple(g.rng)
	g.score = 0
	g.applesEaten = 0
	g.frame = 0
	g.ticks = 0
	g.frameDt = time.Second / time.Duration(tickRate)
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
}

// Resize updates the layout size without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step advances one frame. Actions are applied in arrival order, then the
// pacer decides how many simulation ticks this frame gets. Direction actions
// only count while the game is running: steering is ignored when paused or
// lost, including after a pause earlier in the same frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++

	for _, a := range in.Actions {
		if a == core.ActionPause {
			g.model.TogglePause()
			continue
		}
		if h, ok := headings[a]; ok && g.model.Status() == snake.StatusRunning {
			g.model.RequestDirectionChange(h)
		}
	}

	ticks := 0
	if g.model.Status() == snake.StatusRunning {
		g.pacer.Feed(g.frameDt)
		for ticks < g.cfg.Timing.MaxCatchUp && g.pacer.Ready() {
			g.advance()
			ticks++
			if g.model.Status() == snake.StatusLost {
				break
			}
		}
	}

	return core.StepResult{State: g.State(), Ticks: ticks}
}

// advance runs one simulation tick. An apple under the head at the start of
// the tick is eaten by this tick: the body grows and the score rises by the
// new length.
func (g *Game) advance() {
	grew := g.model.IsOnApple(g.apple)
	g.model.Tick(grew)
	g.ticks++

	if grew {
		g.score += g.model.Len()
		g.applesEaten++
		g.pacer.SpeedUp()
		g.apple = snake.PlaceApple(g.rng)
	}

	if g.model.IsColliding() {
		g.model.Lose()
	}
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Length:   g.model.Len(),
		Ticks:    g.ticks,
		GameOver: g.model.Status() == snake.StatusLost,
		Paused:   g.model.Status() == snake.StatusPaused,
	}
}
