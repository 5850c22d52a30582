package board

import (
	"strconv"

	"github.com/google/uuid"
)

// IDFunc produces a new candidate id. Ids must be unique within a session.
type IDFunc func() string

// NewID returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if the clock-based generator fails
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Sequence returns an IDFunc yielding prefix+"1", prefix+"2", ... in order
func Sequence(prefix string) IDFunc {
	next := 0
	return func() string {
		next++
		return prefix + strconv.Itoa(next)
	}
}
