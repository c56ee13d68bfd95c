// Package tui implements the interactive daily dashboard.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abritton2002/GrowthApp4Men/pkg/catalog"
	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
	"github.com/abritton2002/GrowthApp4Men/pkg/discipline"
	"github.com/abritton2002/GrowthApp4Men/pkg/pick"
	"github.com/abritton2002/GrowthApp4Men/pkg/progress"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

// KeyMap defines the dashboard key bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter", "x"),
			key.WithHelp("space", "toggle"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// refreshMsg asks the model to reload store state, e.g. after another
// process wrote to storage.
type refreshMsg struct{}

// Model is the dashboard state. The discipline store is reloaded from
// persistence on every refresh so external writes show up live.
type Model struct {
	persistence store.Persistence
	keys        KeyMap

	disciplines []*discipline.Discipline
	history     progress.History
	cursor      int
	quote       catalog.Quote

	watch  <-chan store.Event
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel builds the dashboard against the given persistence.
func NewModel(p store.Persistence) *Model {
	m := &Model{
		persistence: p,
		keys:        DefaultKeyMap(),
	}
	if quote, ok := pick.ForDate(catalog.Quotes(), dates.Today()); ok {
		m.quote = quote
	}
	m.reload()
	return m
}

func (m *Model) reload() {
	s := discipline.NewStore(m.persistence)
	s.Initialize(catalog.DefaultDisciplines())
	m.disciplines = s.Disciplines()
	m.history = s.History()
	if m.cursor >= len(m.disciplines) {
		m.cursor = len(m.disciplines) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Init starts the storage watcher.
func (m *Model) Init() tea.Cmd {
	if m.persistence == nil {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	ch, err := m.persistence.Watch(ctx)
	if err != nil {
		cancel()
		m.cancel = nil
		return nil
	}
	m.watch = ch
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	ch := m.watch
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return refreshMsg{}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case refreshMsg:
		m.reload()
		return m, m.waitForChange()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.disciplines)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			if m.cursor < len(m.disciplines) {
				s := discipline.NewStore(m.persistence)
				s.ToggleComplete(m.disciplines[m.cursor].ID)
				m.reload()
			}
		}
	}

	return m, nil
}
