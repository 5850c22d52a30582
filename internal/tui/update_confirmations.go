package tui

import (
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/pipeline/internal/models"
	"github.com/thenoetrevino/pipeline/internal/services/candidate"
	"github.com/thenoetrevino/pipeline/internal/tui/state"
)

// ============================================================================
// CONFIRMATION HANDLERS
// ============================================================================

// openDeleteConfirm shows the confirmation dialog for a card.
// The dialog only knows the display name and what to run on confirm.
func (m Model) openDeleteConfirm(candidateID, name string, columnID models.ColumnID) {
	svc := m.App.CandidateService
	notify := m.NotificationState
	m.ConfirmState.Open(name, func() {
		err := svc.DeleteCandidate(candidateID, columnID)
		switch {
		case err == nil:
			notify.Add(state.LevelInfo, fmt.Sprintf("Deleted %s", name))
		case errors.Is(err, candidate.ErrCandidateNotFound):
			notify.Add(state.LevelWarning, fmt.Sprintf("%s is no longer on the board", name))
		default:
			slog.Error("Error deleting candidate", "error", err)
			notify.Add(state.LevelError, "Failed to delete candidate")
		}
	})
	m.UiState.SetMode(state.DeleteConfirmMode)
}

// handleDeleteConfirm handles candidate deletion confirmation.
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.ConfirmState.Confirm()
		m.clampSelection()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case "n", "N", "esc", "q":
		m.ConfirmState.Close()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}
