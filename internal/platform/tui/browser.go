package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const maxBrowserRows = 200

// BrowserKeyMap defines the key bindings for the replay browser.
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Watch  key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Watch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Filter}, {k.Watch, k.Quit}}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Filter: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "game filter"),
		),
		Watch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "watch"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel lists recorded replays in a table.
type BrowserModel struct {
	store    *storage.Store
	filters  []string // "" means all games
	filter   int
	replays  []storage.Replay
	loadErr  error
	table    table.Model
	help     help.Model
	keys     BrowserKeyMap
	width    int
	height   int
	selected int64
	quitting bool
}

// NewBrowserModel creates a browser over store.
func NewBrowserModel(store *storage.Store, width, height int) BrowserModel {
	filters := []string{""}
	for _, g := range registry.List() {
		filters = append(filters, g.ID)
	}

	m := BrowserModel{
		store:   store,
		filters: filters,
		help:    help.New(),
		keys:    DefaultBrowserKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Game", Width: 12},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Len", Width: 5},
		{Title: "Ticks", Width: 7},
		{Title: "End", Width: 5},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-6)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *BrowserModel) load() {
	m.replays, m.loadErr = nil, nil
	if m.store != nil {
		m.replays, m.loadErr = m.store.ListReplays(context.Background(), m.filters[m.filter], maxBrowserRows)
	}
	m.table.SetRows(ReplayRows(m.replays))
	m.table.GotoTop()
}

// ReplayRows formats replays as table rows.
func ReplayRows(replays []storage.Replay) []table.Row {
	rows := make([]table.Row, len(replays))
	for i, r := range replays {
		rows[i] = table.Row{
			strconv.FormatInt(r.ID, 10),
			r.GameID,
			r.Player,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Length),
			strconv.FormatUint(r.Ticks, 10),
			r.EndReason,
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation and selection.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Filter):
			m.filter = (m.filter + 1) % len(m.filters)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Watch):
			if i := m.table.Cursor(); i >= 0 && i < len(m.replays) {
				m.selected = m.replays[i].ID
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(ReplayRows(m.replays))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	filter := "all games"
	if f := m.filters[m.filter]; f != "" {
		filter = f
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("REPLAYS - %s", filter)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case m.loadErr != nil:
		b.WriteString(boxStyle.Render("Could not load replays: " + m.loadErr.Error()))
	case len(m.replays) == 0:
		empty := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
		b.WriteString(boxStyle.Render(empty.Render("No replays recorded yet.")))
	default:
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the replay chosen with enter, or 0.
func (m BrowserModel) Selected() int64 {
	return m.selected
}

// Browse runs the replay browser and returns the replay id to watch, or 0.
func Browse(store *storage.Store, width, height int) (int64, error) {
	p := tea.NewProgram(NewBrowserModel(store, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	m, ok := final.(BrowserModel)
	if !ok {
		return 0, nil
	}
	return m.Selected(), nil
}
