package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/pipeline/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	// Forms need ALL messages, not only keys
	if m.UiState.Mode() == state.AddCandidateMode {
		return m.updateCandidateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)

	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)

	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	}

	return m, nil
}

// handleKeyMsg dispatches key messages to the appropriate mode handler.
func (m Model) handleKeyMsg(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(msg)
	case state.DragMode:
		return m.handleDragMode(msg)
	case state.MenuMode:
		return m.handleMenuMode(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.DetailMode:
		return m.handleDetailMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	case state.SearchMode:
		return m.handleSearchMode(msg)
	}
	return m, nil
}

// handleWindowResize handles terminal resize events.
func (m Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.UiState.SetWidth(msg.Width)
	m.UiState.SetHeight(msg.Height)

	// Ensure viewport offset is still valid after resize
	columns := m.columnCount()
	if m.UiState.ViewportOffset()+m.UiState.ViewportSize() > columns {
		m.UiState.SetViewportOffset(max(0, columns-m.UiState.ViewportSize()))
	}
	m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())

	if col, ok := m.getCurrentColumn(); ok {
		m.UiState.EnsureCardVisible(col.ID, m.UiState.SelectedCandidate(), m.visibleCards())
	}
	return m, nil
}

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", "space", " ":
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}

// handleDetailMode handles input while the candidate detail layer is open.
func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ViewCandidate, m.Config.KeyMappings.Quit, "esc", "enter":
		m.DetailState.CandidateID = ""
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}
