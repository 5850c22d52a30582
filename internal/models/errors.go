package models

import (
	"errors"
	"strings"
)

// Domain-specific errors for board operations.
// Board transitions themselves never fail; these are reported by the
// service layer so callers can tell why an operation was a no-op.
var (
	// ErrMissingField indicates a required candidate field was empty
	ErrMissingField = errors.New("required field is missing")

	// ErrCandidateNotFound indicates the candidate is not in the expected column
	ErrCandidateNotFound = errors.New("candidate not found in column")

	// ErrSameColumn indicates a move whose source and target are the same column
	ErrSameColumn = errors.New("source and target column are the same")

	// ErrUnknownColumn indicates a column id outside the fixed pipeline stages
	ErrUnknownColumn = errors.New("unknown column")
)

// ValidationError lists the required fields missing from a submission
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Unwrap allows errors.Is(err, ErrMissingField)
func (e *ValidationError) Unwrap() error {
	return ErrMissingField
}
