// Package notifications renders user-facing notices for the header bar.
package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/pipeline/internal/tui/state"
)

// RenderInline renders a compact inline notification (for the header bar)
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	// Icon + message on single line
	content := style.icon + " " + message

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderInlineFromState renders a compact inline notification from state
func RenderInlineFromState(n state.Notification) string {
	return RenderInline(SeverityOf(n.Level), n.Message)
}
