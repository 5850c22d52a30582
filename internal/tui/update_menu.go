package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/pipeline/internal/tui/state"
)

// handleMenuMode handles input while a card's action menu is open.
func (m Model) handleMenuMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.PrevCandidate, "up", "shift+tab":
		m.MenuState.Up()
	case km.NextCandidate, "down", "tab":
		m.MenuState.Down()
	case "enter":
		return m.handleMenuSelect()
	case "esc", km.Quit, km.OpenMenu:
		m.MenuState.Close()
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleMenuSelect runs the highlighted menu entry.
// Only Delete has an effect, and it asks for confirmation first.
func (m Model) handleMenuSelect() (tea.Model, tea.Cmd) {
	item := m.MenuState.Selected()
	candidateID, columnID := m.MenuState.CandidateID, m.MenuState.ColumnID
	m.MenuState.Close()
	m.UiState.SetMode(state.NormalMode)

	if item.Action != state.MenuDelete {
		slog.Debug("menu action", "action", item.Label, "id", candidateID)
		return m, nil
	}

	c, _, err := m.App.CandidateService.GetCandidate(candidateID)
	if err != nil {
		slog.Debug("menu target vanished", "id", candidateID, "error", err)
		return m, nil
	}
	m.openDeleteConfirm(c.ID, c.Name, columnID)
	return m, nil
}
