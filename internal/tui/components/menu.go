package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/pipeline/internal/tui/theme"
)

// MenuProps configures the card action menu
type MenuProps struct {
	Items  []string
	Cursor int
}

// RenderCardMenu renders the action menu shown next to a card
//
//	Actions
//	> Email Candidate
//	  View Resume
//	  Add to Favorites
//	  Delete
func RenderCardMenu(props MenuProps) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Actions"))
	b.WriteString("\n")

	selected := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight))
	deleteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Delete))

	for i, item := range props.Items {
		b.WriteString("\n")
		line := "  " + item
		if i == props.Cursor {
			line = selected.Render("> " + item)
		} else if item == "Delete" {
			line = "  " + deleteStyle.Render(item)
		}
		b.WriteString(line)
	}

	b.WriteString("\n\n")
	b.WriteString(SubtleStyle.Render(MenuFooter))
	return MenuBoxStyle.Render(b.String())
}
