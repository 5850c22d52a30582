package testutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/thenoetrevino/pipeline/internal/app"
	"github.com/thenoetrevino/pipeline/internal/board"
)

// NewSeededApp creates an application over the seed board with
// deterministic ids ("new-1", "new-2", ...) and a discarded log
func NewSeededApp(t *testing.T) *app.App {
	t.Helper()

	application := app.New(board.Seed(),
		app.WithIDFunc(board.Sequence("new-")),
		app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	t.Cleanup(func() {
		_ = application.Close()
	})
	return application
}
