package tui

import (
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/pipeline/internal/models"
	"github.com/thenoetrevino/pipeline/internal/services/candidate"
	"github.com/thenoetrevino/pipeline/internal/tui/huhforms"
	"github.com/thenoetrevino/pipeline/internal/tui/layers"
	"github.com/thenoetrevino/pipeline/internal/tui/state"
)

// newCandidateForm builds the add-candidate form over the current draft
func (m Model) newCandidateForm() *huh.Form {
	width := layers.ModalWidth(m.UiState.Width()) - 6 // border and padding of the dialog box
	return huhforms.CreateCandidateForm(&m.FormState.Draft).
		WithTheme(huhforms.CreatePipelineTheme(m.Config.ColorScheme)).
		WithShowHelp(false).
		WithWidth(max(width, 20))
}

// updateCandidateForm handles all messages when in AddCandidateMode
// This is separated out because forms need to receive ALL messages, not just KeyMsg
func (m Model) updateCandidateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.FormState.CandidateForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	// Check for keyboard shortcuts before passing to form
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m.closeCandidateForm()
		case m.Config.KeyMappings.SaveForm:
			return m.handleFormSave()
		}
	}

	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.UiState.SetWidth(sizeMsg.Width)
		m.UiState.SetHeight(sizeMsg.Height)
	}

	// Forward to form
	model, cmd := m.FormState.CandidateForm.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.FormState.CandidateForm = form
	}

	switch m.FormState.CandidateForm.State {
	case huh.StateCompleted:
		if m.submitCandidate() {
			return m, tea.ClearScreen
		}
		// Rejected: keep the dialog open with a fresh form over the same draft
		m.FormState.CandidateForm = m.newCandidateForm()
		return m, m.FormState.CandidateForm.Init()
	case huh.StateAborted:
		return m.closeCandidateForm()
	}

	return m, cmd
}

// handleFormSave handles the save shortcut. An invalid draft leaves the
// form open where it is.
func (m Model) handleFormSave() (tea.Model, tea.Cmd) {
	if m.submitCandidate() {
		return m, tea.ClearScreen
	}
	return m, nil
}

// submitCandidate validates the draft and adds the candidate.
// Returns true when the candidate was added and the dialog closed.
func (m Model) submitCandidate() bool {
	m.NotificationState.Clear()
	draft := m.FormState.Draft

	c, err := m.App.CandidateService.CreateCandidate(candidate.CreateCandidateRequest{
		Name:       draft.Name,
		Email:      draft.Email,
		Role:       draft.Role,
		University: draft.University,
		Notes:      draft.Notes,
	})
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			m.NotificationState.Add(state.LevelWarning, fmt.Sprintf("Please fill in: %s", joinFields(verr.Fields)))
			return false
		}
		slog.Error("Error adding candidate", "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to add candidate")
		return false
	}

	m.FormState.Clear()
	m.UiState.SetMode(state.NormalMode)
	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Added %s to Applied", c.Name))
	m.selectCandidate(c.ID)
	return true
}

// closeCandidateForm discards the draft and returns to the board
func (m Model) closeCandidateForm() (tea.Model, tea.Cmd) {
	if m.FormState.HasChanges() {
		slog.Debug("add candidate dialog closed, draft discarded")
	}
	m.FormState.Clear()
	m.UiState.SetMode(state.NormalMode)
	return m, tea.ClearScreen
}

func joinFields(fields []string) string {
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	}
	out := fields[0]
	for _, f := range fields[1 : len(fields)-1] {
		out += ", " + f
	}
	return out + " and " + fields[len(fields)-1]
}
