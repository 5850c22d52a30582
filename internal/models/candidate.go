package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Candidate represents a single applicant on the hiring board
type Candidate struct {
	ID         string // Unique within a session, never reused
	Name       string
	Email      string
	Role       string
	University string
	Avatar     string // Image reference, DefaultAvatar for new candidates
	Notes      string // Optional free-form notes (markdown)
}

// Initials returns the upper-cased first letter of every word in the name.
// Used in place of the avatar image, which a terminal cannot draw.
func (c Candidate) Initials() string {
	var b strings.Builder
	for _, word := range strings.Fields(c.Name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// HasNotes reports whether the candidate carries any non-blank notes
func (c Candidate) HasNotes() bool {
	return strings.TrimSpace(c.Notes) != ""
}

// CandidateFields holds the user-provided fields of a new candidate.
// Name, Email, Role and University are required; Notes is optional.
type CandidateFields struct {
	Name       string
	Email      string
	Role       string
	University string
	Notes      string
}

// Trimmed returns a copy with surrounding whitespace removed from every field
func (f CandidateFields) Trimmed() CandidateFields {
	return CandidateFields{
		Name:       strings.TrimSpace(f.Name),
		Email:      strings.TrimSpace(f.Email),
		Role:       strings.TrimSpace(f.Role),
		University: strings.TrimSpace(f.University),
		Notes:      strings.TrimSpace(f.Notes),
	}
}

// Missing returns the names of required fields that are empty or whitespace,
// in form order. An empty result means the fields are valid.
func (f CandidateFields) Missing() []string {
	var missing []string
	t := f.Trimmed()
	if t.Name == "" {
		missing = append(missing, "name")
	}
	if t.Email == "" {
		missing = append(missing, "email")
	}
	if t.Role == "" {
		missing = append(missing, "role")
	}
	if t.University == "" {
		missing = append(missing, "university")
	}
	return missing
}

// Valid reports whether all required fields are present
func (f CandidateFields) Valid() bool {
	return len(f.Missing()) == 0
}
