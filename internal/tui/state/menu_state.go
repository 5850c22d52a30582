package state

import "github.com/thenoetrevino/pipeline/internal/models"

// MenuAction identifies an entry in the card action menu
type MenuAction int

const (
	MenuEmail MenuAction = iota
	MenuViewResume
	MenuFavorite
	MenuDelete
)

// MenuItem is one row of the card action menu
type MenuItem struct {
	Action MenuAction
	Label  string
}

// CardMenuItems are the entries shown for every card, in display order
var CardMenuItems = []MenuItem{
	{Action: MenuEmail, Label: "Email Candidate"},
	{Action: MenuViewResume, Label: "View Resume"},
	{Action: MenuFavorite, Label: "Add to Favorites"},
	{Action: MenuDelete, Label: "Delete"},
}

// MenuState tracks the open action menu and the card it belongs to.
type MenuState struct {
	CandidateID string
	ColumnID    models.ColumnID
	Cursor      int
}

// NewMenuState creates an empty MenuState.
func NewMenuState() *MenuState {
	return &MenuState{}
}

// Open attaches the menu to a card and resets the cursor.
func (s *MenuState) Open(candidateID string, columnID models.ColumnID) {
	s.CandidateID = candidateID
	s.ColumnID = columnID
	s.Cursor = 0
}

// Close detaches the menu from its card.
func (s *MenuState) Close() {
	*s = MenuState{}
}

// IsOpenFor reports whether the menu is attached to the given card.
func (s *MenuState) IsOpenFor(candidateID string) bool {
	return s.CandidateID != "" && s.CandidateID == candidateID
}

// Up moves the cursor up, wrapping to the bottom.
func (s *MenuState) Up() {
	s.Cursor = (s.Cursor - 1 + len(CardMenuItems)) % len(CardMenuItems)
}

// Down moves the cursor down, wrapping to the top.
func (s *MenuState) Down() {
	s.Cursor = (s.Cursor + 1) % len(CardMenuItems)
}

// Selected returns the item under the cursor.
func (s *MenuState) Selected() MenuItem {
	return CardMenuItems[s.Cursor]
}
