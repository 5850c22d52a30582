package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/pipeline/internal/app"
	"github.com/thenoetrevino/pipeline/internal/config"
	"github.com/thenoetrevino/pipeline/internal/dnd"
	"github.com/thenoetrevino/pipeline/internal/models"
	"github.com/thenoetrevino/pipeline/internal/tui/components"
	"github.com/thenoetrevino/pipeline/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	NotificationState *state.NotificationState
	FormState         *state.FormState
	ConfirmState      *state.ConfirmState
	MenuState         *state.MenuState
	SearchState       *state.SearchState
	DetailState       *state.DetailState

	// Drag is the drag-and-drop handshake between a card and a column
	Drag *dnd.Session
}

// InitialModel creates and initializes the TUI model over the application container
func InitialModel(ctx context.Context, application *app.App, cfg *config.Config) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		cfg = config.Default()
	}

	// Initialize styles with color scheme from config
	components.InitStyles(cfg.ColorScheme)

	return Model{
		Ctx:               ctx,
		App:               application,
		Config:            cfg,
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		FormState:         state.NewFormState(),
		ConfirmState:      state.NewConfirmState(),
		MenuState:         state.NewMenuState(),
		SearchState:       state.NewSearchState(),
		DetailState:       state.NewDetailState(),
		Drag:              &dnd.Session{},
	}
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// visibleBoard returns the board as shown on screen.
// While a search filter is active only matching cards are included.
func (m Model) visibleBoard() models.Board {
	svc := m.App.CandidateService
	if m.SearchState.HasQuery() {
		return svc.FilteredBoard(m.SearchState.Query)
	}
	return svc.Board()
}

// getCurrentColumn returns the currently selected column of the visible board
func (m Model) getCurrentColumn() (models.Column, bool) {
	b := m.visibleBoard()
	idx := m.UiState.SelectedColumn()
	if idx < 0 || idx >= len(b.Columns) {
		return models.Column{}, false
	}
	return b.Columns[idx], true
}

// getCurrentCandidate returns the currently selected card and its column
func (m Model) getCurrentCandidate() (models.Candidate, models.ColumnID, bool) {
	col, ok := m.getCurrentColumn()
	if !ok {
		return models.Candidate{}, "", false
	}
	idx := m.UiState.SelectedCandidate()
	if idx >= len(col.Candidates) {
		return models.Candidate{}, "", false
	}
	return col.Candidates[idx], col.ID, true
}

// columnCount returns the number of columns on the board
func (m Model) columnCount() int {
	return len(m.App.CandidateService.Board().Columns)
}

// visibleCards returns how many cards fit in a column at the current height
func (m Model) visibleCards() int {
	return components.VisibleCards(m.UiState.ContentHeight())
}

// clampSelection keeps the card selection inside the selected column
// after a card left it, and keeps its scroll offset in range.
func (m Model) clampSelection() {
	col, ok := m.getCurrentColumn()
	if !ok {
		m.UiState.SetSelectedCandidate(0)
		return
	}
	if m.UiState.SelectedCandidate() >= len(col.Candidates) {
		m.UiState.SetSelectedCandidate(len(col.Candidates) - 1)
	}
	m.UiState.ClampCardScroll(col.ID, len(col.Candidates), m.visibleCards())
}

// selectCandidate moves the selection to the given card on the visible board
func (m Model) selectCandidate(candidateID string) {
	b := m.visibleBoard()
	for colIdx, col := range b.Columns {
		if idx := col.IndexOf(candidateID); idx >= 0 {
			m.UiState.SetSelectedColumn(colIdx)
			m.UiState.SetSelectedCandidate(idx)
			m.UiState.EnsureSelectionVisible(colIdx)
			m.UiState.EnsureCardVisible(col.ID, idx, m.visibleCards())
			return
		}
	}
}
