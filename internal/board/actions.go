package board

import "github.com/thenoetrevino/pipeline/internal/models"

// Action is a board transition request
type Action interface {
	isAction()
}

// AddCandidate appends a new candidate to the end of the applied column.
// ID and Avatar are assigned by the caller before the action is applied;
// an action without an ID is a no-op.
type AddCandidate struct {
	ID     string
	Avatar string
	Fields models.CandidateFields
}

// DeleteCandidate removes a candidate from the given column
type DeleteCandidate struct {
	CandidateID string
	ColumnID    models.ColumnID
}

// MoveCandidate removes a candidate from Source and appends it to Target
type MoveCandidate struct {
	CandidateID string
	Source      models.ColumnID
	Target      models.ColumnID
}

func (AddCandidate) isAction()    {}
func (DeleteCandidate) isAction() {}
func (MoveCandidate) isAction()   {}
