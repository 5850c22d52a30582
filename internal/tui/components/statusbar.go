package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/pipeline/internal/tui/theme"
)

type StatusBarProps struct {
	Width       int
	Hint        string // Mode-specific key hint shown on the left
	SearchMode  bool
	SearchQuery string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: the mode hint, or the search prompt while typing a query
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := props.Hint
	if leftText == "" {
		leftText = "Pipeline - Candidate Tracking"
	}
	rightText := "press ? for help"

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(leftText)
	if props.SearchMode {
		leftRendered = StatusBarSearchStyle.
			Foreground(lipgloss.Color(theme.Highlight)).
			Render("/" + props.SearchQuery + "█")
	}
	rightRendered := style.Render(rightText)

	// Calculate space between left and right text
	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := max(props.Width-leftWidth-rightWidth, 1)

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
