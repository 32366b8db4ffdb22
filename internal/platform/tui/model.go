package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// minRowsForFooter is the board (24 rows plus border), the HUD line and the
// help footer.
const minRowsForFooter = 28

const saveTimeout = 5 * time.Second

// Options configure a play session.
type Options struct {
	Config  config.SnakeConfig // already resolved for the game's preset
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables recording
	Logger  *log.Logger
	Player  string
	// KeepOpen leaves the Game Over screen up after a loss so the player can
	// restart with R. By default the program exits on the losing tick.
	KeepOpen bool
}

// Outcome describes how a session ended.
type Outcome struct {
	GameID   string
	State    core.GameState
	ReplayID int64 // 0 when nothing was recorded
}

// resizer is implemented by games that keep their layout across resizes.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for one game, either played live or driven
// by a recorded replay.
type Model struct {
	game    registry.Game
	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	store   *storage.Store
	logger  *log.Logger
	player  string
	keep    bool

	screen *core.Screen
	keys   KeyMap
	help   help.Model
	footer bool

	input    core.InputFrame
	state    core.GameState
	recorder *replay.Recorder
	saved    bool
	replayID int64

	script   *replay.Script // set when watching a replay
	watching int64
	quitting bool
}

// NewModel resets game and wraps it for live play.
func NewModel(game registry.Game, opts Options) Model {
	rc := opts.Runtime
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		game:    game,
		cfg:     opts.Config,
		runtime: rc,
		store:   opts.Store,
		logger:  logger,
		player:  opts.Player,
		keep:    opts.KeepOpen,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   core.NewInputFrame(),
	}
	m.screen = core.NewScreen(0, 0)
	m.resize(rc.ScreenW, rc.ScreenH)
	m.start()
	return m
}

// NewWatchModel plays back a prepared replay session. Only quit is accepted.
func NewWatchModel(s *replay.Session, replayID int64, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	m := Model{
		game:     s.Game,
		runtime:  s.Runtime,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    core.NewInputFrame(),
		script:   s.Script,
		watching: replayID,
	}
	m.screen = core.NewScreen(0, 0)
	m.resize(s.Runtime.ScreenW, s.Runtime.ScreenH)
	m.state = m.game.State()
	return m
}

// start resets the game with the current runtime config and begins a new
// recording.
func (m *Model) start() {
	m.game.Reset(m.runtime)
	m.state = m.game.State()
	m.saved = false
	m.replayID = 0
	m.recorder = nil
	if m.store != nil {
		m.recorder = replay.NewRecorder(m.game.ID(), m.cfg, m.runtime, m.player)
	}
}

func (m *Model) resize(w, h int) {
	m.runtime.ScreenW = w
	m.runtime.ScreenH = h
	m.footer = h >= minRowsForFooter
	if m.footer {
		h--
	}
	m.screen.Resize(w, h)
	m.help.Width = w
	if r, ok := m.game.(resizer); ok {
		r.Resize(w, h)
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles key, resize and frame messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.finish(storage.EndQuit)
		m.quitting = true
		return m, tea.Quit
	case m.script != nil:
		return m, nil
	case action == core.ActionRestart:
		if m.keep && m.state.GameOver {
			m.runtime.Seed = time.Now().UnixNano()
			m.start()
		}
		return m, nil
	}

	m.input.Push(action)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.script != nil {
		if !m.script.Done() {
			m.state = m.game.Step(m.script.Next()).State
		}
		return m, tickCmd(m.runtime.TickRate)
	}

	if !m.state.GameOver {
		res := m.game.Step(m.input)
		if m.recorder != nil {
			m.recorder.Record(m.input)
		}
		m.state = res.State
		if m.state.GameOver {
			m.finish(storage.EndLost)
			if !m.keep {
				m.quitting = true
				return m, tea.Quit
			}
		}
	}
	m.input.Clear()
	return m, tickCmd(m.runtime.TickRate)
}

// finish stores the recording once. Storage errors never stop the game.
func (m *Model) finish(reason string) {
	if m.saved || m.recorder == nil || m.recorder.Frames() == 0 {
		return
	}
	m.saved = true

	r, err := m.recorder.Finish(m.state, reason)
	if err != nil {
		m.logger.Warn("could not package replay", "error", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	id, err := m.store.SaveReplay(ctx, r)
	if err != nil {
		m.logger.Warn("could not save replay", "error", err)
		return
	}
	m.replayID = id
	m.logger.Debug("replay saved", "id", id, "score", r.Score, "frames", r.Frames)
}

// View renders the board and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if !m.footer {
		return out
	}
	return out + "\n" + footerStyle.Render(m.footerText())
}

func (m Model) footerText() string {
	if m.script == nil {
		return m.help.View(m.keys)
	}
	status := "playing"
	if m.script.Done() {
		status = "finished"
	}
	return fmt.Sprintf("replay #%d  frame %d  %s  •  %s",
		m.watching, m.script.Frame(), status, m.help.ShortHelpView(m.keys.watchHelp()))
}

// Outcome returns the final state and the id of the saved replay, if any.
func (m Model) Outcome() Outcome {
	return Outcome{GameID: m.game.ID(), State: m.state, ReplayID: m.replayID}
}

// Run plays game in the terminal until the player quits.
func Run(game registry.Game, opts Options) (Outcome, error) {
	p := tea.NewProgram(NewModel(game, opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Outcome{}, err
	}
	m, ok := final.(Model)
	if !ok {
		return Outcome{GameID: game.ID()}, nil
	}
	return m.Outcome(), nil
}

// Watch plays back a replay session in the terminal.
func Watch(s *replay.Session, replayID int64, logger *log.Logger) error {
	p := tea.NewProgram(NewWatchModel(s, replayID, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
