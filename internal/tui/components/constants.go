package components

// Card geometry. Cards have a fixed size so the mouse can be mapped back to a card.
const (
	CardTextWidth = 36                // Text width inside a card
	CardWidth     = CardTextWidth + 4 // CardWidth includes border and padding
	CardLines     = 4                 // badge+name, role, university, notes
	CardHeight    = CardLines + 2     // CardHeight is the fixed height of a card including its border
)

// Column geometry
const (
	ColumnTextWidth = CardWidth
	ColumnWidth     = ColumnTextWidth + 4 // border and padding
	ColumnGap       = 2                   // blank cells between adjacent columns
	ColumnPitch     = ColumnWidth + ColumnGap
	BoardMargin     = 2 // left scroll indicator and a space

	columnFrame     = 2 // top and bottom border
	headerLines     = 1 // column name and count
	topIndicator    = 1 // empty line or "▲ more above"
	bottomIndicator = 1 // empty line or "▼ more below"

	// CardsTop is the line offset of the first card inside a rendered column
	CardsTop = 1 + headerLines + topIndicator
)

// Dialog footer strings
const (
	ConfirmFooter = "y/enter: delete  n/esc: cancel"
	MenuFooter    = "enter: select  esc: close"
	FormFooter    = "ctrl+s: save  esc: cancel"
)

const noNotes = "no notes"
