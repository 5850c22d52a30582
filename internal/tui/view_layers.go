package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/pipeline/internal/tui/components"
	"github.com/thenoetrevino/pipeline/internal/tui/layers"
	"github.com/thenoetrevino/pipeline/internal/tui/state"
)

// renderCandidateFormLayer renders the add-candidate form modal as a layer
func (m Model) renderCandidateFormLayer() *lipgloss.Layer {
	if m.FormState.CandidateForm == nil {
		return nil
	}

	layerWidth := layers.ModalWidth(m.UiState.Width())

	// Rejected submissions are explained inside the dialog as well as in the header
	var warning string
	if n, ok := m.NotificationState.Latest(); ok && n.Level == state.LevelWarning {
		warning = components.WarningStyle.Render(n.Message)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.FormState.CandidateForm.View(),
		warning,
		"",
		components.SubtleStyle.Render(components.FormFooter),
	)

	formBox := components.CreateBoxStyle.
		Width(layerWidth).
		Render(content)

	return layers.CreateCenteredLayer(formBox, m.UiState.Width(), m.UiState.Height())
}

// renderDeleteConfirmLayer renders the delete confirmation dialog as a layer
func (m Model) renderDeleteConfirmLayer() *lipgloss.Layer {
	if !m.ConfirmState.IsOpen() {
		return nil
	}

	confirmBox := components.RenderDeleteConfirm(components.ConfirmProps{
		Name:  m.ConfirmState.Name(),
		Width: min(layers.ConfirmWidth, m.UiState.Width()),
	})
	return layers.CreateCenteredLayer(confirmBox, m.UiState.Width(), m.UiState.Height())
}

// renderCardMenuLayer renders the action menu next to the card it belongs to
func (m Model) renderCardMenuLayer() *lipgloss.Layer {
	c, _, ok := m.getCurrentCandidate()
	if !ok || !m.MenuState.IsOpenFor(c.ID) {
		return nil
	}

	labels := make([]string, len(state.CardMenuItems))
	for i, item := range state.CardMenuItems {
		labels[i] = item.Label
	}
	menu := components.RenderCardMenu(components.MenuProps{
		Items:  labels,
		Cursor: m.MenuState.Cursor,
	})

	// Anchor to the top right corner of the selected card
	x, y := m.selectedCardPosition()
	x += components.ColumnWidth - layers.MenuWidth/2
	return layers.CreateAnchoredLayer(menu, x, y, m.UiState.Width(), m.UiState.Height())
}

// selectedCardPosition returns the screen position of the selected card's top left corner
func (m Model) selectedCardPosition() (int, int) {
	visibleCol := m.UiState.SelectedColumn() - m.UiState.ViewportOffset()
	x := components.ColumnX(max(visibleCol, 0))

	y := state.HeaderHeight
	if col, ok := m.getCurrentColumn(); ok {
		offset := components.ClampOffset(m.UiState.CardScrollOffset(col.ID), len(col.Candidates), m.visibleCards())
		y += components.CardY(max(m.UiState.SelectedCandidate()-offset, 0))
	}
	return x, y
}

// renderDetailLayer renders the full record of a candidate as a layer
func (m Model) renderDetailLayer() *lipgloss.Layer {
	c, col, err := m.App.CandidateService.GetCandidate(m.DetailState.CandidateID)
	if err != nil {
		return nil
	}

	detail := components.RenderDetail(components.DetailProps{
		Candidate: c,
		Column:    col,
		Width:     layers.ModalWidth(m.UiState.Width()),
	})
	return layers.CreateCenteredLayer(detail, m.UiState.Width(), m.UiState.Height())
}

// renderHelpLayer renders the help screen as a layer
func (m Model) renderHelpLayer() *lipgloss.Layer {
	helpBox := components.HelpBoxStyle.
		Width(min(layers.HelpWidth, m.UiState.Width())).
		Render(m.helpText())

	return layers.CreateCenteredLayer(helpBox, m.UiState.Width(), m.UiState.Height())
}
