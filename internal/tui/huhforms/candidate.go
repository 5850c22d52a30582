package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/pipeline/internal/models"
)

// Form field keys
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldRole       = "role"
	FieldUniversity = "university"
	FieldNotes      = "notes"
)

// CreateCandidateForm creates a huh form for adding a new candidate.
// Every field is bound to the draft, so rebuilding the form over the same
// draft keeps what the user already typed.
func CreateCandidateForm(draft *models.CandidateFields) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key(FieldName).
			Title("Name").
			Placeholder("Full name").
			Value(&draft.Name),

		huh.NewInput().
			Key(FieldEmail).
			Title("Email").
			Placeholder("name@example.com").
			Value(&draft.Email),

		huh.NewInput().
			Key(FieldRole).
			Title("Role").
			Placeholder("Frontend Developer").
			Value(&draft.Role),

		huh.NewInput().
			Key(FieldUniversity).
			Title("University").
			Placeholder("University name").
			Value(&draft.University),

		huh.NewText().
			Key(FieldNotes).
			Title("Notes (optional)").
			Placeholder("Anything worth remembering...").
			CharLimit(1000).
			Lines(3).
			Value(&draft.Notes),
	}

	form := huh.NewForm(
		huh.NewGroup(fields...).
			Title("Add New Candidate").
			Description("They will be added to the Applied stage."),
	)
	return form.WithKeyMap(CandidateKeyMap())
}
