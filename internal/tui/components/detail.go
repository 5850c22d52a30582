package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/pipeline/internal/models"
	"github.com/thenoetrevino/pipeline/internal/tui/theme"
)

type DetailProps struct {
	Candidate models.Candidate
	Column    models.ColumnID
	Width     int // Outer width of the detail layer
}

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderNotes renders candidate notes as markdown, falling back to plain
// word-wrapped text if glamour fails
func RenderNotes(notes string, width int) string {
	if strings.TrimSpace(notes) == "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("No notes")
	}

	renderer, err := getRenderer(width)
	if err == nil {
		rendered, err := renderer.Render(notes)
		if err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return wordwrap.String(notes, width)
}

// RenderDetail renders the full record of a candidate
func RenderDetail(props DetailProps) string {
	c := props.Candidate
	textWidth := max(props.Width-DetailBoxStyle.GetHorizontalFrameSize(), 20)

	label := SubtleStyle.Width(12)
	row := func(name, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, label.Render(name), value)
	}

	heading := lipgloss.JoinHorizontal(lipgloss.Top,
		BadgeStyle.Render(c.Initials()),
		" ",
		TitleStyle.Render(c.Name),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		heading,
		"",
		row("Stage", props.Column.Title()),
		row("Email", c.Email),
		row("Role", c.Role),
		row("University", c.University),
		row("Avatar", c.Avatar),
		"",
		TitleStyle.Render("Notes"),
		RenderNotes(c.Notes, textWidth),
		"",
		SubtleStyle.Render("esc: close"),
	)
	return DetailBoxStyle.Width(props.Width).Render(content)
}
