package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
)

// ConfirmProps configures the delete confirmation dialog
type ConfirmProps struct {
	Name  string // Display name interpolated into the message
	Width int    // Outer width of the dialog
}

// DeletePrompt returns the confirmation message for the given display name
func DeletePrompt(name string) string {
	return fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone.", name)
}

// RenderDeleteConfirm renders the delete confirmation dialog
//
//	Confirm Deletion
//
//	Are you sure you want to delete {name}?
//	This action cannot be undone.
//
//	  Cancel    Delete
func RenderDeleteConfirm(props ConfirmProps) string {
	frame := DeleteConfirmBoxStyle.GetHorizontalFrameSize()
	textWidth := max(props.Width-frame, 20)

	title := TitleStyle.Render("Confirm Deletion")
	body := wordwrap.String(DeletePrompt(props.Name), textWidth)
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		ButtonStyle.Render("Cancel"),
		" ",
		ActiveButtonStyle.Render("Delete"),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		"",
		buttons,
		"",
		SubtleStyle.Render(ConfirmFooter),
	)
	return DeleteConfirmBoxStyle.Render(content)
}
