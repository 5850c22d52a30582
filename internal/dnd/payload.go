// Package dnd models a drag-and-drop gesture between a card and a column.
// The session carries a typed payload from the drag source to the drop
// target; Validate decides at the drop boundary whether the drop is a move.
package dnd

import "github.com/thenoetrevino/pipeline/internal/models"

// Payload is the data attached to a drag when it starts
type Payload struct {
	CandidateID    string
	SourceColumnID models.ColumnID
}

// Verdict is the outcome of checking a drop against the current board
type Verdict int

const (
	// VerdictMove means the drop should move the candidate
	VerdictMove Verdict = iota
	// VerdictSameColumn means the card was dropped back onto its own column
	VerdictSameColumn
	// VerdictUnknownColumn means the source or target is not a pipeline stage
	VerdictUnknownColumn
	// VerdictStale means the candidate is no longer in the claimed source
	VerdictStale
)

func (v Verdict) String() string {
	switch v {
	case VerdictMove:
		return "move"
	case VerdictSameColumn:
		return "same-column"
	case VerdictUnknownColumn:
		return "unknown-column"
	case VerdictStale:
		return "stale"
	default:
		return "unknown"
	}
}

// Validate checks a drop of p onto target. Only VerdictMove should result in
// a board change.
func Validate(b models.Board, p Payload, target models.ColumnID) Verdict {
	source, okSource := b.Column(p.SourceColumnID)
	_, okTarget := b.Column(target)
	if !okSource || !okTarget {
		return VerdictUnknownColumn
	}
	if p.SourceColumnID == target {
		return VerdictSameColumn
	}
	if source.IndexOf(p.CandidateID) < 0 {
		return VerdictStale
	}
	return VerdictMove
}
