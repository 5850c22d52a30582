package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/pipeline/internal/tui/state"
	"github.com/thenoetrevino/pipeline/internal/tui/theme"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true                                   // Use alternate screen buffer
	view.BackgroundColor = lipgloss.Color(theme.Background) // Set root background color
	if !m.Config.DisableMouse {
		view.MouseMode = tea.MouseModeCellMotion // press, drag and release events for card dragging
	}

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// Layer-based rendering: always show base board with modal overlays
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewKanbanBoard()),
	}

	var modalLayer *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.AddCandidateMode:
		modalLayer = m.renderCandidateFormLayer()
	case state.DeleteConfirmMode:
		modalLayer = m.renderDeleteConfirmLayer()
	case state.MenuMode:
		modalLayer = m.renderCardMenuLayer()
	case state.DetailMode:
		modalLayer = m.renderDetailLayer()
	case state.HelpMode:
		modalLayer = m.renderHelpLayer()
	}

	if modalLayer != nil {
		layers = append(layers, modalLayer)
	}

	// Notifications are rendered inline with the header, no floating layers
	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}
