package dnd

import "github.com/thenoetrevino/pipeline/internal/models"

// Source identifies which input device started a drag
type Source int

const (
	SourceKeyboard Source = iota
	SourceMouse
)

// Session tracks one drag at a time. The zero value is an idle session.
type Session struct {
	payload Payload
	over    models.ColumnID
	source  Source
	active  bool
}

// Start attaches a payload for the candidate in columnID.
// Any drag already in progress is replaced.
func (s *Session) Start(candidateID string, columnID models.ColumnID, source Source) {
	s.payload = Payload{CandidateID: candidateID, SourceColumnID: columnID}
	s.over = columnID
	s.source = source
	s.active = true
}

// Active reports whether a drag is in progress
func (s *Session) Active() bool {
	return s.active
}

// Payload returns the attached payload, if any
func (s *Session) Payload() (Payload, bool) {
	return s.payload, s.active
}

// Source returns the device that started the current drag
func (s *Session) Source() Source {
	return s.source
}

// Over marks columnID as the hover target and reports whether it accepts
// the drop. Every pipeline stage is a drop target.
func (s *Session) Over(columnID models.ColumnID) bool {
	if !s.active {
		return false
	}
	if !columnID.Valid() {
		return false
	}
	s.over = columnID
	return true
}

// Target returns the column currently hovered
func (s *Session) Target() models.ColumnID {
	return s.over
}

// Drop consumes the payload and ends the session. It returns false when no
// drag is active or the column is not a drop target; in the latter case the
// drag is cancelled.
func (s *Session) Drop(columnID models.ColumnID) (Payload, bool) {
	if !s.active {
		return Payload{}, false
	}
	p := s.payload
	s.reset()
	if !columnID.Valid() {
		return Payload{}, false
	}
	return p, true
}

// Cancel ends the session without a drop
func (s *Session) Cancel() {
	s.reset()
}

func (s *Session) reset() {
	*s = Session{}
}
