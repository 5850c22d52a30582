package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/pipeline/internal/dnd"
	"github.com/thenoetrevino/pipeline/internal/tui/components"
	"github.com/thenoetrevino/pipeline/internal/tui/notifications"
	"github.com/thenoetrevino/pipeline/internal/tui/state"
)

// viewKanbanBoard renders the header, the visible columns and the status bar
func (m Model) viewKanbanBoard() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		m.renderColumns(),
		"",
		m.renderStatusBar(),
	)
}

func (m Model) renderHeader() string {
	var notification string
	if n, ok := m.NotificationState.Latest(); ok {
		notification = notifications.RenderInlineFromState(n)
	}

	var filter string
	if m.SearchState.IsActive {
		filter = m.SearchState.Query
	}

	return components.RenderHeader(components.HeaderProps{
		Total:        m.App.CandidateService.TotalCount(),
		Notification: notification,
		Filter:       filter,
		Width:        m.UiState.Width(),
	})
}

// renderColumns renders the columns inside the horizontal viewport
//
//	◀ [Applied] [Screening] [Interview] ▶
func (m Model) renderColumns() string {
	svc := m.App.CandidateService
	b := m.visibleBoard()
	height := m.UiState.ContentHeight()
	offset := m.UiState.ViewportOffset()
	end := min(offset+m.UiState.ViewportSize(), len(b.Columns))

	payload, dragging := m.Drag.Payload()
	filtering := m.SearchState.HasQuery()

	leftIndicator := " "
	if offset > 0 {
		leftIndicator = components.IndicatorStyle.Render("◀")
	}
	parts := []string{leftIndicator, " "}

	for i := offset; i < end; i++ {
		col := b.Columns[i]
		selected := i == m.UiState.SelectedColumn()

		props := components.ColumnProps{
			Column:       col,
			Count:        svc.ColumnCount(col.ID),
			Selected:     selected,
			SelectedIdx:  m.UiState.SelectedCandidate(),
			DropTarget:   dragging && m.Drag.Target() == col.ID,
			Height:       height,
			ScrollOffset: m.UiState.CardScrollOffset(col.ID),
		}
		if dragging {
			props.DraggingID = payload.CandidateID
		}
		if filtering && len(col.Candidates) == 0 && props.Count > 0 {
			props.EmptyMessage = "No matching candidates"
		}

		if i > offset {
			parts = append(parts, strings.Repeat(" ", components.ColumnGap))
		}
		parts = append(parts, components.RenderColumn(props))
	}

	if end < len(b.Columns) {
		parts = append(parts, " ", components.IndicatorStyle.Render("▶"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderStatusBar() string {
	return components.RenderStatusBar(components.StatusBarProps{
		Width:       m.UiState.Width(),
		Hint:        m.statusHint(),
		SearchMode:  m.UiState.Mode() == state.SearchMode,
		SearchQuery: m.SearchState.Query,
	})
}

// statusHint returns the key hint for the current mode
func (m Model) statusHint() string {
	km := m.Config.KeyMappings
	switch m.UiState.Mode() {
	case state.DragMode:
		if m.Drag.Source() == dnd.SourceMouse {
			return "release over a column to drop"
		}
		return km.PrevColumn + "/" + km.NextColumn + ": choose column  " + km.DropCandidate + ": drop  esc: cancel"
	case state.MenuMode:
		return components.MenuFooter
	case state.DeleteConfirmMode:
		return components.ConfirmFooter
	case state.AddCandidateMode:
		return components.FormFooter
	}
	return km.AddCandidate + ": add  " + km.GrabCandidate + ": move  " + km.OpenMenu + ": actions  " + km.Search + ": search"
}
