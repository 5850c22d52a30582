package models

// ColumnID identifies one of the fixed pipeline stages
type ColumnID string

const (
	ColumnApplied   ColumnID = "applied"
	ColumnScreening ColumnID = "screening"
	ColumnInterview ColumnID = "interview"
	ColumnHired     ColumnID = "hired"
)

// ColumnOrder is the left-to-right order of the pipeline stages
var ColumnOrder = []ColumnID{
	ColumnApplied,
	ColumnScreening,
	ColumnInterview,
	ColumnHired,
}

var columnTitles = map[ColumnID]string{
	ColumnApplied:   "Applied",
	ColumnScreening: "Screening",
	ColumnInterview: "Interview",
	ColumnHired:     "Hired",
}

// Valid reports whether id is one of the known pipeline stages
func (id ColumnID) Valid() bool {
	_, ok := columnTitles[id]
	return ok
}

// Title returns the display name of the stage, or the raw id if unknown
func (id ColumnID) Title() string {
	if title, ok := columnTitles[id]; ok {
		return title
	}
	return string(id)
}

// Column represents a pipeline stage and the candidates currently in it.
// Candidates are ordered; new arrivals are appended at the end.
type Column struct {
	ID         ColumnID
	Title      string
	Candidates []Candidate
}

// Len returns the number of candidates in the column
func (c Column) Len() int {
	return len(c.Candidates)
}

// IndexOf returns the position of the candidate in the column, or -1
func (c Column) IndexOf(candidateID string) int {
	for i, candidate := range c.Candidates {
		if candidate.ID == candidateID {
			return i
		}
	}
	return -1
}
