package candidate

import "github.com/thenoetrevino/pipeline/internal/models"

// Candidate-related errors, re-exported so callers only import the service
var (
	ErrMissingField      = models.ErrMissingField
	ErrCandidateNotFound = models.ErrCandidateNotFound
	ErrSameColumn        = models.ErrSameColumn
	ErrUnknownColumn     = models.ErrUnknownColumn
)
