package tui

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/pipeline/internal/dnd"
	"github.com/thenoetrevino/pipeline/internal/models"
	"github.com/thenoetrevino/pipeline/internal/tui/components"
	"github.com/thenoetrevino/pipeline/internal/tui/state"
)

// ============================================================================
// KEYBOARD DRAG
// ============================================================================

// handleGrabCandidate picks up the selected card
func (m Model) handleGrabCandidate() (tea.Model, tea.Cmd) {
	c, colID, ok := m.getCurrentCandidate()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No candidate selected")
		return m, nil
	}
	m.Drag.Start(c.ID, colID, dnd.SourceKeyboard)
	m.UiState.SetMode(state.DragMode)
	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Moving %s: choose a column and press enter", c.Name))
	return m, nil
}

// handleDragMode handles keys while a card is being dragged
func (m Model) handleDragMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.PrevColumn, "left":
		m.hoverColumnBy(-1)
	case km.NextColumn, "right":
		m.hoverColumnBy(1)
	case km.DropCandidate:
		return m.dropOn(m.Drag.Target())
	case "esc", km.Quit:
		m.cancelDrag()
	case "ctrl+c":
		return m.handleQuit()
	}
	return m, nil
}

// hoverColumnBy moves the hover target delta columns left or right
func (m Model) hoverColumnBy(delta int) {
	b := m.App.CandidateService.Board()
	idx := b.ColumnIndex(m.Drag.Target())
	next := idx + delta
	if idx < 0 || next < 0 || next >= len(b.Columns) {
		return
	}
	if m.Drag.Over(b.Columns[next].ID) {
		m.UiState.EnsureSelectionVisible(next)
	}
}

// dropOn ends the drag over target and applies the move when the drop is valid
func (m Model) dropOn(target models.ColumnID) (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.NormalMode)
	m.NotificationState.Clear()

	payload, ok := m.Drag.Drop(target)
	if !ok {
		return m, nil
	}

	svc := m.App.CandidateService
	verdict := dnd.Validate(svc.Board(), payload, target)
	slog.Debug("drop", "verdict", verdict.String(), "id", payload.CandidateID, "from", payload.SourceColumnID, "to", target)

	switch verdict {
	case dnd.VerdictMove:
		if err := svc.MoveCandidate(payload.CandidateID, payload.SourceColumnID, target); err != nil {
			slog.Error("Error moving candidate", "error", err)
			m.NotificationState.Add(state.LevelError, "Failed to move candidate")
			return m, nil
		}
		m.UiState.ClampCardScroll(payload.SourceColumnID, svc.ColumnCount(payload.SourceColumnID), m.visibleCards())
		m.selectCandidate(payload.CandidateID)
		if c, _, err := svc.GetCandidate(payload.CandidateID); err == nil {
			m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Moved %s to %s", c.Name, target.Title()))
		}
	case dnd.VerdictStale:
		m.NotificationState.Add(state.LevelWarning, "That card is no longer in its column")
	}
	return m, nil
}

// cancelDrag abandons the drag without touching the board
func (m Model) cancelDrag() {
	m.Drag.Cancel()
	m.NotificationState.Clear()
	m.UiState.SetMode(state.NormalMode)
}

// ============================================================================
// MOUSE DRAG
// ============================================================================

// handleMouseClick selects the card under the pointer and picks it up
func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft || m.UiState.Mode() != state.NormalMode {
		return m, nil
	}
	m.NotificationState.Clear()

	colIdx, ok := m.columnAtPoint(mouse.X, mouse.Y)
	if !ok {
		return m, nil
	}
	m.UiState.SetSelectedColumn(colIdx)
	m.UiState.SetSelectedCandidate(0)

	cardIdx, ok := m.cardAtPoint(colIdx, mouse.Y)
	if !ok {
		return m, nil
	}
	m.UiState.SetSelectedCandidate(cardIdx)

	c, colID, ok := m.getCurrentCandidate()
	if !ok {
		return m, nil
	}
	m.Drag.Start(c.ID, colID, dnd.SourceMouse)
	m.UiState.SetMode(state.DragMode)
	return m, nil
}

// handleMouseMotion updates the hover target of a mouse drag
func (m Model) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	if !m.Drag.Active() || m.Drag.Source() != dnd.SourceMouse {
		return m, nil
	}
	mouse := msg.Mouse()
	if colIdx, ok := m.columnAtPoint(mouse.X, mouse.Y); ok {
		m.Drag.Over(m.App.CandidateService.Board().Columns[colIdx].ID)
	}
	return m, nil
}

// handleMouseRelease drops over the column under the pointer, or cancels
// when released anywhere else
func (m Model) handleMouseRelease(msg tea.MouseReleaseMsg) (tea.Model, tea.Cmd) {
	if !m.Drag.Active() || m.Drag.Source() != dnd.SourceMouse {
		return m, nil
	}
	mouse := msg.Mouse()
	colIdx, ok := m.columnAtPoint(mouse.X, mouse.Y)
	if !ok {
		m.cancelDrag()
		return m, nil
	}
	return m.dropOn(m.App.CandidateService.Board().Columns[colIdx].ID)
}

// columnAtPoint maps screen coordinates to a board column index
func (m Model) columnAtPoint(x, y int) (int, bool) {
	top := state.HeaderHeight
	if y < top || y >= top+m.UiState.ContentHeight() {
		return 0, false
	}
	offset := m.UiState.ViewportOffset()
	visible := min(m.UiState.ViewportSize(), m.columnCount()-offset)
	v, ok := components.ColumnAt(x, visible)
	if !ok {
		return 0, false
	}
	return offset + v, true
}

// cardAtPoint maps a screen line inside a column to the index of the card
// drawn there on the visible board
func (m Model) cardAtPoint(colIdx, y int) (int, bool) {
	b := m.visibleBoard()
	if colIdx >= len(b.Columns) {
		return 0, false
	}
	col := b.Columns[colIdx]
	visible := m.visibleCards()
	offset := components.ClampOffset(m.UiState.CardScrollOffset(col.ID), len(col.Candidates), visible)
	drawn := min(visible, len(col.Candidates)-offset)
	idx, ok := components.CardAt(y-state.HeaderHeight, drawn)
	if !ok {
		return 0, false
	}
	return offset + idx, true
}
