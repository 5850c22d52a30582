package app

import (
	"log/slog"

	"github.com/thenoetrevino/pipeline/internal/board"
	"github.com/thenoetrevino/pipeline/internal/models"
	"github.com/thenoetrevino/pipeline/internal/services/candidate"
)

// App holds all application services and provides dependency injection.
// This is the main application container that owns the board store.
type App struct {
	// In-memory board store, the single source of truth for a session
	store *board.Store

	// Service layer (business logic)
	CandidateService candidate.Service
}

// New creates a new App over the given initial board.
// This is the single entry point for creating the application container.
func New(initial models.Board, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	storeOpts := []board.Option{board.WithOnChange(logChange(cfg.logger))}
	if cfg.idFunc != nil {
		storeOpts = append(storeOpts, board.WithIDFunc(cfg.idFunc))
	}

	store := board.NewStore(initial, storeOpts...)
	return &App{
		store:            store,
		CandidateService: candidate.NewService(store),
	}
}

// Store returns the underlying board store.
func (a *App) Store() *board.Store {
	return a.store
}

// Close performs cleanup of application resources.
// The board lives in memory only, so there is nothing to release.
func (a *App) Close() error {
	return nil
}

// logChange logs every state-changing dispatch
func logChange(logger *slog.Logger) board.ChangeFunc {
	return func(a board.Action, b models.Board) {
		switch a := a.(type) {
		case board.AddCandidate:
			logger.Debug("board changed", "action", "add", "id", a.ID, "total", b.TotalCount())
		case board.DeleteCandidate:
			logger.Debug("board changed", "action", "delete", "id", a.CandidateID, "total", b.TotalCount())
		case board.MoveCandidate:
			logger.Debug("board changed", "action", "move", "id", a.CandidateID, "total", b.TotalCount())
		}
	}
}
