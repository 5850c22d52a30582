package state

import "github.com/thenoetrevino/pipeline/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	DragMode                      // A card is being dragged (keyboard or mouse)
	MenuMode                      // Card action menu is open
	DeleteConfirmMode             // Confirming candidate deletion
	AddCandidateMode              // Add-candidate form with huh
	DetailMode                    // Full candidate record
	HelpMode                      // Displaying help screen
	SearchMode                    // Vim-style search mode (/)
)

// UIState manages the user interface state.
// This includes navigation (column/candidate selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedCandidate is the index of the selected card within the selected column
	selectedCandidate int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int

	// cardScrollOffsets tracks the vertical scroll offset for each column
	// Key: columnID, Value: scroll offset (index of first visible card)
	cardScrollOffsets map[models.ColumnID]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		selectedColumn:    0,
		selectedCandidate: 0,
		width:             0,
		height:            0,
		mode:              NormalMode,
		viewportOffset:    0,
		viewportSize:      1, // Default to 1, will be recalculated when width is set
		cardScrollOffsets: make(map[models.ColumnID]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedCandidate returns the index of the currently selected card.
func (s *UIState) SelectedCandidate() int {
	return s.selectedCandidate
}

// SetSelectedCandidate updates the selected card index.
func (s *UIState) SetSelectedCandidate(index int) {
	s.selectedCandidate = max(0, index)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// HeaderHeight is the number of lines above the board: title, total count and a gap line
const HeaderHeight = 3

// ContentHeight returns the available height for the main content area.
// This is terminal height minus header and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-HeaderHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = offset
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many columns can fit in the terminal width.
//
// Column layout:
//   - Content width: 40 characters
//   - Padding: 2 characters (1 on each side)
//   - Border: 2 characters (1 on each side)
//   - Spacing: 2 characters (between columns)
//   - Total per column: 46 characters
//
// The calculation reserves 4 characters for margins and scroll indicators,
// and ensures at least 1 column is always visible.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	const columnWidth = 46  // 40 content + 2 padding + 2 border + 2 spacing
	const reservedWidth = 4 // margins and scroll indicators

	availableWidth := s.width - reservedWidth

	// Calculate how many columns fit, with minimum of 1
	s.viewportSize = max(1, availableWidth/columnWidth)
}

// ScrollViewportLeft scrolls the viewport one column to the left.
// Returns true if scrolling occurred, false if already at leftmost position.
func (s *UIState) ScrollViewportLeft() bool {
	if s.viewportOffset > 0 {
		s.viewportOffset--
		return true
	}
	return false
}

// ScrollViewportRight scrolls the viewport one column to the right.
// Returns true if scrolling occurred, false if already at rightmost position.
//
// Parameters:
//   - columnsLen: the total number of columns
func (s *UIState) ScrollViewportRight(columnsLen int) bool {
	if s.viewportOffset+s.viewportSize < columnsLen {
		s.viewportOffset++
		return true
	}
	return false
}

// EnsureSelectionVisible adjusts the viewport to ensure the selected column is visible.
// This should be called after navigation or when the selection changes.
func (s *UIState) EnsureSelectionVisible(selectedColumn int) {
	// If selection is off-screen to the left, scroll left
	if selectedColumn < s.viewportOffset {
		s.viewportOffset = selectedColumn
	}

	// If selection is off-screen to the right, scroll right
	if selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedColumn - s.viewportSize + 1
	}
}

// ResetSelection resets both column and card selection to zero.
// This is typically called when a search filter changes the visible board.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedCandidate = 0
	s.viewportOffset = 0
	s.cardScrollOffsets = make(map[models.ColumnID]int)
}

// CardScrollOffset returns the vertical scroll offset for a given column.
// Returns 0 if the column has no scroll offset set.
func (s *UIState) CardScrollOffset(columnID models.ColumnID) int {
	if offset, ok := s.cardScrollOffsets[columnID]; ok {
		return offset
	}
	return 0
}

// SetCardScrollOffset updates the vertical scroll offset for a given column.
func (s *UIState) SetCardScrollOffset(columnID models.ColumnID, offset int) {
	s.cardScrollOffsets[columnID] = max(0, offset)
}

// ClampCardScroll keeps the scroll offset of a column within its card count,
// used after a card leaves the column.
func (s *UIState) ClampCardScroll(columnID models.ColumnID, cardCount int, visibleCount int) {
	maxOffset := max(0, cardCount-visibleCount)
	if s.CardScrollOffset(columnID) > maxOffset {
		s.cardScrollOffsets[columnID] = maxOffset
	}
}

// EnsureCardVisible adjusts the scroll offset to ensure the selected card is visible.
// This should be called after card navigation within a column.
//
// Parameters:
//   - columnID: the column containing the card
//   - selectedIdx: index of the selected card within the column
//   - visibleCount: number of cards that can be displayed at once
func (s *UIState) EnsureCardVisible(columnID models.ColumnID, selectedIdx int, visibleCount int) {
	offset := s.CardScrollOffset(columnID)

	// If selection is above visible area, scroll up
	if selectedIdx < offset {
		s.cardScrollOffsets[columnID] = selectedIdx
	}

	// If selection is below visible area, scroll down
	if selectedIdx >= offset+visibleCount {
		s.cardScrollOffsets[columnID] = selectedIdx - visibleCount + 1
	}
}
