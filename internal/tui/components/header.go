package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/pipeline/internal/models"
	"github.com/thenoetrevino/pipeline/internal/tui/theme"
)

// HeaderProps configures the board header
type HeaderProps struct {
	Total        int
	Notification string // Pre-rendered inline notification, may be empty
	Filter       string // Active search filter, may be empty
	Width        int
}

// RenderHeader renders the two header lines above the board
//
//	Internship Hiring Pipeline        {notification}
//	Total Candidates: {N}             filter: {query}
func RenderHeader(props HeaderProps) string {
	title := TitleStyle.Render(models.BoardTitle)
	if props.Notification != "" {
		title = spread(title, props.Notification, props.Width)
	}

	total := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Render(fmt.Sprintf("Total Candidates: %d", props.Total))
	if props.Filter != "" {
		filter := SubtleStyle.Render("filter: " + props.Filter)
		total = spread(total, filter, props.Width)
	}

	return title + "\n" + total
}

// spread places left and right at the edges of a line of the given width
func spread(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, padRight("", gap), right)
}
