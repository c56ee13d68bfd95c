package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

type testConfig struct {
	path string
}

func (c testConfig) BasePath() string {
	return c.path
}

func testModel(t *testing.T) *Model {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return NewModel(p)
}

func TestNewModelSeedsDefaults(t *testing.T) {
	m := testModel(t)
	if len(m.disciplines) != 5 {
		t.Fatalf("expected 5 seeded disciplines, got %d", len(m.disciplines))
	}
	if m.cursor != 0 {
		t.Fatalf("expected cursor at top, got %d", m.cursor)
	}
}

func TestCursorNavigationClamped(t *testing.T) {
	m := testModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.cursor != 0 {
		t.Fatalf("cursor moved above the top: %d", m.cursor)
	}

	for i := 0; i < 10; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}
	if m.cursor != len(m.disciplines)-1 {
		t.Fatalf("cursor moved past the bottom: %d", m.cursor)
	}
}

func TestToggleFlipsUnderCursor(t *testing.T) {
	m := testModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if !m.disciplines[0].Completed {
		t.Fatal("expected the first discipline toggled complete")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if m.disciplines[0].Completed {
		t.Fatal("expected the toggle to flip back")
	}
}

func TestViewShowsChecklistAndZone(t *testing.T) {
	m := testModel(t)
	view := m.View()

	if !strings.Contains(view, "Morning Prayer") {
		t.Fatalf("expected checklist in view, got:\n%s", view)
	}
	if !strings.Contains(view, "Off Mission") {
		t.Fatalf("expected the zero-score zone in view, got:\n%s", view)
	}
}

func TestQuitStopsWatcher(t *testing.T) {
	m := testModel(t)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("expected the watcher command from Init")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected tea.Quit")
	}
}
