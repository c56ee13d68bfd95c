// Package ui runs the interactive terminal view.
package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abritton2002/GrowthApp4Men/pkg/store"
	"github.com/abritton2002/GrowthApp4Men/pkg/tui"
)

type UI struct {
	Persistence store.Persistence
}

func (n *UI) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not open ui, no persistence")
	}

	p := tea.NewProgram(tui.NewModel(n.Persistence), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
