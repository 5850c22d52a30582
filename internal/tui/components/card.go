package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/pipeline/internal/models"
	"github.com/thenoetrevino/pipeline/internal/tui/theme"
)

// CardProps configures a single candidate card
type CardProps struct {
	Candidate models.Candidate
	Selected  bool
	Dragging  bool // the card is the payload of an active drag
}

// RenderCard renders a single candidate as a card
//
//	╭──────────────────────────────────────╮
//	│ AJ Alex Johnson                      │
//	│ Frontend Developer                   │
//	│ Stanford University                  │
//	│ Strong React skills…                 │
//	╰──────────────────────────────────────╯
//
// This has a fixed width and height.
func RenderCard(props CardProps) string {
	bg := theme.CardBg
	if props.Selected {
		bg = theme.SelectedBg
	}
	c := props.Candidate

	lines := []string{
		renderCardTitle(c, bg),
		renderCardLine(c.Role, lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)), bg),
		renderCardLine(c.University, lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)), bg),
		renderCardNotes(c, bg),
	}

	style := CardStyle.
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))
	switch {
	case props.Dragging:
		style = style.BorderForeground(lipgloss.Color(theme.DropTarget)).BorderStyle(lipgloss.DoubleBorder())
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	return style.Render(strings.Join(lines, "\n"))
}

func renderCardTitle(c models.Candidate, bg string) string {
	badge := BadgeStyle.Render(c.Initials())
	nameWidth := CardTextWidth - lipgloss.Width(badge) - 1
	name := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(bg)).
		Render(padRight(fit(c.Name, nameWidth), nameWidth))
	spacer := lipgloss.NewStyle().Background(lipgloss.Color(bg)).Render(" ")
	return badge + spacer + name
}

func renderCardLine(text string, style lipgloss.Style, bg string) string {
	return style.Background(lipgloss.Color(bg)).Render(padRight(fit(text, CardTextWidth), CardTextWidth))
}

// renderCardNotes shows the first wrapped line of the notes, with an ellipsis when more follows
func renderCardNotes(c models.Candidate, bg string) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Background(lipgloss.Color(bg)).Italic(true)
	if !c.HasNotes() {
		return style.Render(padRight(noNotes, CardTextWidth))
	}

	wrapped := strings.Split(wordwrap.String(strings.TrimSpace(c.Notes), CardTextWidth), "\n")
	first := strings.TrimSpace(wrapped[0])
	if len(wrapped) > 1 {
		first = fit(first+" "+wrapped[1], CardTextWidth)
	}
	return style.Render(padRight(fit(first, CardTextWidth), CardTextWidth))
}

// fit truncates s to width cells, marking cut text with an ellipsis
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// padRight pads s with spaces to width cells
func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
