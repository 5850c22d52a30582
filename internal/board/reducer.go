package board

import (
	"slices"

	"github.com/thenoetrevino/pipeline/internal/models"
)

// Apply returns the board that results from applying a to b
func Apply(b models.Board, a Action) models.Board {
	next, _ := Reduce(b, a)
	return next
}

// Reduce applies a to b and reports whether the board changed.
// b is never mutated; changed columns are copied.
func Reduce(b models.Board, a Action) (models.Board, bool) {
	switch a := a.(type) {
	case AddCandidate:
		return addCandidate(b, a)
	case DeleteCandidate:
		return deleteCandidate(b, a)
	case MoveCandidate:
		return moveCandidate(b, a)
	}
	return b, false
}

func addCandidate(b models.Board, a AddCandidate) (models.Board, bool) {
	fields := a.Fields.Trimmed()
	if a.ID == "" || !fields.Valid() {
		return b, false
	}
	// ids are unique across the whole board
	if b.Contains(a.ID) {
		return b, false
	}

	idx := b.ColumnIndex(models.ColumnApplied)
	if idx < 0 {
		return b, false
	}

	avatar := a.Avatar
	if avatar == "" {
		avatar = models.DefaultAvatar
	}

	candidate := models.Candidate{
		ID:         a.ID,
		Name:       fields.Name,
		Email:      fields.Email,
		Role:       fields.Role,
		University: fields.University,
		Avatar:     avatar,
		Notes:      fields.Notes,
	}

	candidates := append(slices.Clone(b.Columns[idx].Candidates), candidate)
	return withColumns(b, map[int][]models.Candidate{idx: candidates}), true
}

func deleteCandidate(b models.Board, a DeleteCandidate) (models.Board, bool) {
	idx := b.ColumnIndex(a.ColumnID)
	if idx < 0 {
		return b, false
	}

	pos := b.Columns[idx].IndexOf(a.CandidateID)
	if pos < 0 {
		return b, false
	}

	candidates := slices.Delete(slices.Clone(b.Columns[idx].Candidates), pos, pos+1)
	return withColumns(b, map[int][]models.Candidate{idx: candidates}), true
}

func moveCandidate(b models.Board, a MoveCandidate) (models.Board, bool) {
	if a.Source == a.Target {
		return b, false
	}

	srcIdx := b.ColumnIndex(a.Source)
	dstIdx := b.ColumnIndex(a.Target)
	if srcIdx < 0 || dstIdx < 0 {
		return b, false
	}

	// Drag payloads can be stale, so the candidate must still be in the
	// column the payload claims it came from.
	pos := b.Columns[srcIdx].IndexOf(a.CandidateID)
	if pos < 0 {
		return b, false
	}

	candidate := b.Columns[srcIdx].Candidates[pos]
	source := slices.Delete(slices.Clone(b.Columns[srcIdx].Candidates), pos, pos+1)
	target := append(slices.Clone(b.Columns[dstIdx].Candidates), candidate)

	return withColumns(b, map[int][]models.Candidate{
		srcIdx: source,
		dstIdx: target,
	}), true
}

// withColumns returns a copy of b with the candidate lists at the given
// column indexes replaced. Untouched columns share their backing arrays.
func withColumns(b models.Board, replaced map[int][]models.Candidate) models.Board {
	columns := slices.Clone(b.Columns)
	for idx, candidates := range replaced {
		columns[idx].Candidates = candidates
	}
	return models.Board{Columns: columns}
}
