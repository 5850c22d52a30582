package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/pipeline/internal/app"
	"github.com/thenoetrevino/pipeline/internal/board"
	"github.com/thenoetrevino/pipeline/internal/config"
	"github.com/thenoetrevino/pipeline/internal/config/colors"
	"github.com/thenoetrevino/pipeline/internal/logging"
	"github.com/thenoetrevino/pipeline/internal/tui/core"
)

// Options are the command line overrides applied on top of the config file
type Options struct {
	NoMouse bool
	Theme   string
}

// Apply merges the command line overrides into cfg
func (o Options) Apply(cfg *config.Config) error {
	if o.NoMouse {
		cfg.DisableMouse = true
	}
	if o.Theme != "" {
		if !colors.IsPreset(o.Theme) {
			return fmt.Errorf("unknown theme %q (available: %s)", o.Theme, strings.Join(colors.Presets, ", "))
		}
		cfg.ColorScheme.MergeFrom(colors.ColorScheme{Preset: o.Theme})
	}
	return nil
}

// Launch starts the TUI application and blocks until it exits.
// The context is expected to be cancelled on SIGINT/SIGTERM.
func Launch(ctx context.Context, opts Options) error {
	// Initialize logging to file before anything else
	logFile, err := logging.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			slog.Error("error closing log file", "error", err)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := opts.Apply(cfg); err != nil {
		return err
	}

	application := app.New(board.Seed())
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing application", "error", err)
		}
	}()

	slog.Info("starting pipeline", "theme", cfg.ColorScheme.Preset, "mouse", !cfg.DisableMouse)

	tuiApp := core.New(ctx, application, cfg)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		// A cancelled context is a normal shutdown, not a failure
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
