package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/pipeline/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m.handleQuit()
	case km.ShowHelp:
		return m.handleShowHelp()
	case km.AddCandidate:
		return m.handleAddCandidate()
	case km.DeleteCandidate:
		return m.handleDeleteCandidate()
	case km.ViewCandidate:
		return m.handleViewCandidate()
	case km.OpenMenu, "enter":
		return m.handleOpenMenu()
	case km.GrabCandidate:
		return m.handleGrabCandidate()
	case km.ScrollViewportRight:
		return m.handleScrollRight()
	case km.ScrollViewportLeft:
		return m.handleScrollLeft()
	case km.PrevColumn, "left":
		return m.handleNavigateLeft()
	case km.NextColumn, "right":
		return m.handleNavigateRight()
	case km.NextCandidate, "down":
		return m.handleNavigateDown()
	case km.PrevCandidate, "up":
		return m.handleNavigateUp()
	case km.Search:
		return m.handleEnterSearch()
	case "esc":
		if m.SearchState.Query != "" {
			return m.handleSearchCancel()
		}
	}

	return m, nil
}

func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

func (m Model) handleShowHelp() (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.HelpMode)
	return m, nil
}

func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedColumn() > 0 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() - 1)
		m.UiState.SetSelectedCandidate(0)
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the first column")
	}
	return m, nil
}

func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedColumn() < m.columnCount()-1 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + 1)
		m.UiState.SetSelectedCandidate(0)
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the last column")
	}
	return m, nil
}

func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	col, ok := m.getCurrentColumn()
	if !ok {
		return m, nil
	}
	if m.UiState.SelectedCandidate() > 0 {
		m.UiState.SetSelectedCandidate(m.UiState.SelectedCandidate() - 1)
		m.UiState.EnsureCardVisible(col.ID, m.UiState.SelectedCandidate(), m.visibleCards())
	} else if len(col.Candidates) > 0 {
		m.NotificationState.Add(state.LevelInfo, "Already at the first candidate")
	}
	return m, nil
}

func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	col, ok := m.getCurrentColumn()
	if !ok {
		return m, nil
	}
	if m.UiState.SelectedCandidate() < len(col.Candidates)-1 {
		m.UiState.SetSelectedCandidate(m.UiState.SelectedCandidate() + 1)
		m.UiState.EnsureCardVisible(col.ID, m.UiState.SelectedCandidate(), m.visibleCards())
	} else if len(col.Candidates) > 0 {
		m.NotificationState.Add(state.LevelInfo, "Already at the last candidate")
	}
	return m, nil
}

func (m Model) handleScrollRight() (tea.Model, tea.Cmd) {
	if m.UiState.ScrollViewportRight(m.columnCount()) {
		// Keep the selection on screen
		if m.UiState.SelectedColumn() < m.UiState.ViewportOffset() {
			m.UiState.SetSelectedColumn(m.UiState.ViewportOffset())
			m.UiState.SetSelectedCandidate(0)
		}
	}
	return m, nil
}

func (m Model) handleScrollLeft() (tea.Model, tea.Cmd) {
	if m.UiState.ScrollViewportLeft() {
		last := m.UiState.ViewportOffset() + m.UiState.ViewportSize() - 1
		if m.UiState.SelectedColumn() > last {
			m.UiState.SetSelectedColumn(last)
			m.UiState.SetSelectedCandidate(0)
		}
	}
	return m, nil
}

// handleAddCandidate opens the add-candidate dialog over an empty draft
func (m Model) handleAddCandidate() (tea.Model, tea.Cmd) {
	m.FormState.Clear()
	m.FormState.CandidateForm = m.newCandidateForm()
	m.UiState.SetMode(state.AddCandidateMode)
	return m, m.FormState.CandidateForm.Init()
}

// handleDeleteCandidate opens the delete confirmation for the selected card
func (m Model) handleDeleteCandidate() (tea.Model, tea.Cmd) {
	c, colID, ok := m.getCurrentCandidate()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No candidate selected")
		return m, nil
	}
	m.openDeleteConfirm(c.ID, c.Name, colID)
	return m, nil
}

// handleViewCandidate shows the full record of the selected card
func (m Model) handleViewCandidate() (tea.Model, tea.Cmd) {
	c, _, ok := m.getCurrentCandidate()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No candidate selected")
		return m, nil
	}
	m.DetailState.CandidateID = c.ID
	m.UiState.SetMode(state.DetailMode)
	return m, nil
}

// handleOpenMenu opens the action menu of the selected card
func (m Model) handleOpenMenu() (tea.Model, tea.Cmd) {
	c, colID, ok := m.getCurrentCandidate()
	if !ok {
		return m, nil
	}
	m.MenuState.Open(c.ID, colID)
	m.UiState.SetMode(state.MenuMode)
	return m, nil
}
