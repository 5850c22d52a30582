package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDir_WritesToLogFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	closer, err := InitDir(dir)
	require.NoError(t, err)

	slog.Info("candidate added", "id", "c1")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "pipeline.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "candidate added")
	assert.Contains(t, string(data), "id=c1")
}

func TestInit_UsesHomeDirectory(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	home := t.TempDir()
	t.Setenv("HOME", home)

	closer, err := Init()
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	assert.FileExists(t, filepath.Join(home, ".pipeline", "logs", "pipeline.log"))
}
