package tui

import (
	"log/slog"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/pipeline/internal/tui/state"
)

// ============================================================================

// handleEnterSearch enters search mode and clears any previous search state.
func (m Model) handleEnterSearch() (tea.Model, tea.Cmd) {
	m.SearchState.Clear()
	m.SearchState.Deactivate()
	m.UiState.SetMode(state.SearchMode)
	return m.executeSearch()
}

// handleSearchMode handles keyboard input in search mode.
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.handleSearchConfirm()
	case "esc":
		return m.handleSearchCancel()
	case "backspace", "ctrl+h":
		if m.SearchState.Backspace() {
			return m.executeSearch()
		}
		return m, nil
	case "space":
		if m.SearchState.AppendChar(' ') {
			return m.executeSearch()
		}
		return m, nil
	default:
		text := msg.Key().Text
		if utf8.RuneCountInString(text) == 1 {
			r, _ := utf8.DecodeRuneInString(text)
			if m.SearchState.AppendChar(r) {
				return m.executeSearch()
			}
		}
		return m, nil
	}
}

// handleSearchConfirm activates the filter and returns to normal mode.
func (m Model) handleSearchConfirm() (tea.Model, tea.Cmd) {
	if m.SearchState.HasQuery() {
		m.SearchState.Activate()
	} else {
		m.SearchState.Clear()
	}
	m.UiState.SetMode(state.NormalMode)
	return m, nil
}

// handleSearchCancel clears the search and returns to normal mode.
func (m Model) handleSearchCancel() (tea.Model, tea.Cmd) {
	m.SearchState.Clear()
	m.SearchState.Deactivate()
	m.UiState.SetMode(state.NormalMode)
	return m.executeSearch()
}

// executeSearch re-applies the query to the visible board.
// Filtering never touches the store, so only the selection needs resetting.
func (m Model) executeSearch() (tea.Model, tea.Cmd) {
	if m.SearchState.HasQuery() {
		b := m.visibleBoard()
		slog.Debug("search", "query", m.SearchState.Query, "matches", b.TotalCount())
	}
	m.UiState.ResetSelection()
	return m, nil
}
