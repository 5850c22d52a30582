package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/pipeline/internal/models"
	"github.com/thenoetrevino/pipeline/internal/tui/theme"
)

// ColumnProps configures a rendered column
type ColumnProps struct {
	Column models.Column
	// Count shown in the header badge. It always reflects the full board,
	// so it may differ from len(Column.Candidates) while a filter is active.
	Count        int
	Selected     bool
	SelectedIdx  int    // Index of the selected card, ignored unless Selected
	DropTarget   bool   // A dragged card hovers over this column
	DraggingID   string // Candidate being dragged, if any
	Height       int    // Total column height including borders
	ScrollOffset int    // Index of the first visible card
	EmptyMessage string // Defaults to models.EmptyColumnMessage
}

// VisibleCards returns how many cards fit in a column of the given total height
func VisibleCards(height int) int {
	available := height - columnFrame - headerLines - topIndicator - bottomIndicator
	return max(available/CardHeight, 1)
}

// ClampOffset keeps a scroll offset inside [0, count-visible]
func ClampOffset(offset, count, visible int) int {
	return min(max(offset, 0), max(count-visible, 0))
}

// RenderColumn renders a complete column with its title and cards
//
// Layout:
//
//	{Column Title} ({count})
//	▲ more above (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ more below (if more cards below)
func RenderColumn(props ColumnProps) string {
	lines := []string{renderColumnHeader(props.Column, props.Count)}
	cards := props.Column.Candidates
	contentLines := max(props.Height-columnFrame, headerLines+topIndicator+bottomIndicator+1)

	if len(cards) == 0 {
		msg := props.EmptyMessage
		if msg == "" {
			msg = models.EmptyColumnMessage
		}
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true)
		lines = append(lines, "", emptyStyle.Render(centered(msg, ColumnTextWidth)))
	} else {
		visible := VisibleCards(props.Height)
		offset := ClampOffset(props.ScrollOffset, len(cards), visible)
		end := min(offset+visible, len(cards))

		lines = append(lines, renderScrollIndicator(offset > 0, "▲ more above"))
		for i, c := range cards[offset:end] {
			card := RenderCard(CardProps{
				Candidate: c,
				Selected:  props.Selected && offset+i == props.SelectedIdx,
				Dragging:  props.DraggingID != "" && c.ID == props.DraggingID,
			})
			lines = append(lines, strings.Split(card, "\n")...)
		}

		// Push the bottom indicator flush against the bottom border
		for len(lines) < contentLines-bottomIndicator {
			lines = append(lines, "")
		}
		lines = append(lines, renderScrollIndicator(end < len(cards), "▼ more below"))
	}

	for len(lines) < contentLines {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padRight(lines[i], ColumnTextWidth)
	}

	style := ColumnStyle
	switch {
	case props.DropTarget:
		style = style.BorderForeground(lipgloss.Color(theme.DropTarget)).BorderStyle(lipgloss.ThickBorder())
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	return style.Render(strings.Join(lines, "\n"))
}

// renderColumnHeader renders "{title} ({count})" with the count in the badge color
func renderColumnHeader(column models.Column, count int) string {
	title := column.Title
	if title == "" {
		title = column.ID.Title()
	}
	return TitleStyle.Render(title) + " " + CountStyle.Render(fmt.Sprintf("(%d)", count))
}

// renderScrollIndicator returns the indicator text, or an empty line when hidden
func renderScrollIndicator(show bool, text string) string {
	if !show {
		return ""
	}
	return IndicatorStyle.Render(centered(text, ColumnTextWidth))
}

func centered(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap/2) + s
}
