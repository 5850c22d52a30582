package board

import (
	"github.com/thenoetrevino/pipeline/internal/models"
)

// ChangeFunc is called after a dispatch that changed the board
type ChangeFunc func(action Action, next models.Board)

// Option is a functional option for configuring a Store
type Option func(*Store)

// WithIDFunc sets the id generator used for new candidates
func WithIDFunc(fn IDFunc) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// WithOnChange registers a hook that runs after every state change
func WithOnChange(fn ChangeFunc) Option {
	return func(s *Store) {
		s.onChange = fn
	}
}

// Store holds the current board and applies actions to it.
// The zero value is not usable; create one with NewStore.
type Store struct {
	board    models.Board
	newID    IDFunc
	onChange ChangeFunc
}

// NewStore creates a store starting from initial
func NewStore(initial models.Board, opts ...Option) *Store {
	s := &Store{
		board: initial,
		newID: NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Board returns the current board. Callers must treat it as read-only.
func (s *Store) Board() models.Board {
	return s.board
}

// Dispatch applies an action and reports whether the board changed
func (s *Store) Dispatch(a Action) bool {
	next, changed := Reduce(s.board, a)
	if !changed {
		return false
	}
	s.board = next
	if s.onChange != nil {
		s.onChange(a, next)
	}
	return true
}

// AddCandidate assigns a fresh id and the default avatar and appends the
// candidate to the applied column. Returns false without consuming an id
// when a required field is missing.
func (s *Store) AddCandidate(fields models.CandidateFields) (models.Candidate, bool) {
	if !fields.Valid() {
		return models.Candidate{}, false
	}

	id := s.newID()
	ok := s.Dispatch(AddCandidate{
		ID:     id,
		Avatar: models.DefaultAvatar,
		Fields: fields,
	})
	if !ok {
		return models.Candidate{}, false
	}

	candidate, _, _ := s.board.Find(id)
	return candidate, true
}

// DeleteCandidate removes the candidate from the column if present
func (s *Store) DeleteCandidate(candidateID string, columnID models.ColumnID) bool {
	return s.Dispatch(DeleteCandidate{CandidateID: candidateID, ColumnID: columnID})
}

// MoveCandidate moves the candidate from source to the end of target
func (s *Store) MoveCandidate(candidateID string, source, target models.ColumnID) bool {
	return s.Dispatch(MoveCandidate{CandidateID: candidateID, Source: source, Target: target})
}

// TotalCount returns the number of candidates on the board
func (s *Store) TotalCount() int {
	return s.board.TotalCount()
}

// ColumnCount returns the number of candidates in a column, 0 if unknown
func (s *Store) ColumnCount(id models.ColumnID) int {
	col, ok := s.board.Column(id)
	if !ok {
		return 0
	}
	return col.Len()
}

// Find locates a candidate anywhere on the board
func (s *Store) Find(candidateID string) (models.Candidate, models.ColumnID, bool) {
	return s.board.Find(candidateID)
}
