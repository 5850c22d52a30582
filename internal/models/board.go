package models

// Board is the full set of pipeline columns and their candidates.
// It is the single source of truth for everything the UI displays.
type Board struct {
	Columns []Column
}

// NewBoard creates a board with every stage in ColumnOrder and no candidates
func NewBoard() Board {
	columns := make([]Column, len(ColumnOrder))
	for i, id := range ColumnOrder {
		columns[i] = Column{ID: id, Title: id.Title(), Candidates: []Candidate{}}
	}
	return Board{Columns: columns}
}

// ColumnIndex returns the index of the column with the given id, or -1
func (b Board) ColumnIndex(id ColumnID) int {
	for i, col := range b.Columns {
		if col.ID == id {
			return i
		}
	}
	return -1
}

// Column returns the column with the given id
func (b Board) Column(id ColumnID) (Column, bool) {
	idx := b.ColumnIndex(id)
	if idx < 0 {
		return Column{}, false
	}
	return b.Columns[idx], true
}

// TotalCount returns the number of candidates across all columns
func (b Board) TotalCount() int {
	total := 0
	for _, col := range b.Columns {
		total += len(col.Candidates)
	}
	return total
}

// Find locates a candidate anywhere on the board
func (b Board) Find(candidateID string) (Candidate, ColumnID, bool) {
	for _, col := range b.Columns {
		if idx := col.IndexOf(candidateID); idx >= 0 {
			return col.Candidates[idx], col.ID, true
		}
	}
	return Candidate{}, "", false
}

// Contains reports whether a candidate with the given id is on the board
func (b Board) Contains(candidateID string) bool {
	_, _, ok := b.Find(candidateID)
	return ok
}
