package app

import (
	"log/slog"

	"github.com/thenoetrevino/pipeline/internal/board"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	idFunc board.IDFunc
	logger *slog.Logger
}

// WithIDFunc sets the id generator for new candidates
func WithIDFunc(fn board.IDFunc) Option {
	return func(cfg *appConfig) {
		cfg.idFunc = fn
	}
}

// WithLogger sets the logger used for board change records
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
