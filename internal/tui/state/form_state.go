package state

import (
	"charm.land/huh/v2"

	"github.com/thenoetrevino/pipeline/internal/models"
)

// FormState manages the add-candidate form.
// The huh form binds to the Draft fields through pointers, so the draft
// survives rebuilding the form after a rejected submission.
type FormState struct {
	// CandidateForm is the huh form instance, nil when the dialog is closed
	CandidateForm *huh.Form

	// Draft holds the values typed into the form so far
	Draft models.CandidateFields
}

// NewFormState creates a new FormState with an empty draft.
func NewFormState() *FormState {
	return &FormState{}
}

// IsOpen reports whether the add-candidate dialog is showing.
func (s *FormState) IsOpen() bool {
	return s.CandidateForm != nil
}

// HasChanges returns true if anything has been typed into the draft.
func (s *FormState) HasChanges() bool {
	return s.Draft != models.CandidateFields{}
}

// Clear closes the form and discards the draft.
func (s *FormState) Clear() {
	s.CandidateForm = nil
	s.Draft = models.CandidateFields{}
}
