package components

// ColumnAt maps a screen x coordinate to the index of the visible column under it.
// Returns false for the board margin, the gaps between columns and anything
// right of the last visible column.
func ColumnAt(x, visibleColumns int) (int, bool) {
	x -= BoardMargin
	if x < 0 {
		return 0, false
	}
	idx := x / ColumnPitch
	if idx >= visibleColumns || x%ColumnPitch >= ColumnWidth {
		return 0, false
	}
	return idx, true
}

// CardAt maps a line offset relative to the top of a column to the index of
// the visible card under it.
func CardAt(y, visibleCards int) (int, bool) {
	y -= CardsTop
	if y < 0 {
		return 0, false
	}
	idx := y / CardHeight
	if idx >= visibleCards {
		return 0, false
	}
	return idx, true
}

// ColumnX returns the screen x coordinate where a visible column starts
func ColumnX(visibleIdx int) int {
	return BoardMargin + visibleIdx*ColumnPitch
}

// CardY returns the line offset of a visible card relative to the top of its column
func CardY(visibleIdx int) int {
	return CardsTop + visibleIdx*CardHeight
}
