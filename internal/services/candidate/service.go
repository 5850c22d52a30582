package candidate

import (
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/pipeline/internal/board"
	"github.com/thenoetrevino/pipeline/internal/models"
)

// Service defines all candidate-related business operations
type Service interface {
	// Read operations
	Board() models.Board
	FilteredBoard(query string) models.Board
	GetCandidate(candidateID string) (models.Candidate, models.ColumnID, error)
	TotalCount() int
	ColumnCount(columnID models.ColumnID) int

	// Write operations
	CreateCandidate(req CreateCandidateRequest) (models.Candidate, error)
	DeleteCandidate(candidateID string, columnID models.ColumnID) error
	MoveCandidate(candidateID string, source, target models.ColumnID) error
}

// CreateCandidateRequest encapsulates the fields entered in the add form
type CreateCandidateRequest struct {
	Name       string
	Email      string
	Role       string
	University string
	Notes      string // Optional
}

func (r CreateCandidateRequest) fields() models.CandidateFields {
	return models.CandidateFields{
		Name:       r.Name,
		Email:      r.Email,
		Role:       r.Role,
		University: r.University,
		Notes:      r.Notes,
	}
}

// service implements Service on top of an in-memory board store
type service struct {
	store *board.Store
}

// NewService creates a new candidate service over store
func NewService(store *board.Store) Service {
	return &service{store: store}
}

func (s *service) Board() models.Board {
	return s.store.Board()
}

// FilteredBoard returns the board with only the cards matching query.
// The stored board is not affected.
func (s *service) FilteredBoard(query string) models.Board {
	return Filter(s.store.Board(), query)
}

// GetCandidate locates a candidate anywhere on the board
func (s *service) GetCandidate(candidateID string) (models.Candidate, models.ColumnID, error) {
	c, col, ok := s.store.Find(candidateID)
	if !ok {
		return models.Candidate{}, "", fmt.Errorf("candidate %s: %w", candidateID, ErrCandidateNotFound)
	}
	return c, col, nil
}

func (s *service) TotalCount() int {
	return s.store.TotalCount()
}

func (s *service) ColumnCount(columnID models.ColumnID) int {
	return s.store.ColumnCount(columnID)
}

// CreateCandidate validates the request and appends a new candidate to the
// applied column
func (s *service) CreateCandidate(req CreateCandidateRequest) (models.Candidate, error) {
	fields := req.fields()
	if missing := fields.Missing(); len(missing) > 0 {
		slog.Info("rejected candidate submission", "missing", missing)
		return models.Candidate{}, &models.ValidationError{Fields: missing}
	}

	c, ok := s.store.AddCandidate(fields)
	if !ok {
		// Valid fields only fail when the generated id collides
		return models.Candidate{}, fmt.Errorf("failed to add candidate %q", fields.Name)
	}

	slog.Debug("candidate added", "id", c.ID, "name", c.Name)
	return c, nil
}

// DeleteCandidate removes the candidate from columnID
func (s *service) DeleteCandidate(candidateID string, columnID models.ColumnID) error {
	if !columnID.Valid() {
		return fmt.Errorf("delete from %q: %w", columnID, ErrUnknownColumn)
	}
	if !s.store.DeleteCandidate(candidateID, columnID) {
		return fmt.Errorf("delete %s from %s: %w", candidateID, columnID, ErrCandidateNotFound)
	}

	slog.Debug("candidate deleted", "id", candidateID, "column", columnID)
	return nil
}

// MoveCandidate moves the candidate from source to the end of target
func (s *service) MoveCandidate(candidateID string, source, target models.ColumnID) error {
	if !source.Valid() || !target.Valid() {
		return fmt.Errorf("move %s from %q to %q: %w", candidateID, source, target, ErrUnknownColumn)
	}
	if source == target {
		return ErrSameColumn
	}
	if !s.store.MoveCandidate(candidateID, source, target) {
		return fmt.Errorf("move %s from %s: %w", candidateID, source, ErrCandidateNotFound)
	}

	slog.Debug("candidate moved", "id", candidateID, "from", source, "to", target)
	return nil
}
