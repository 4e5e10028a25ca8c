package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerRoutesByLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := slog.New(NewHandler(&out, &errOut, slog.LevelInfo))

	logger.Debug("hidden")
	logger.Info("seeded catalog", "rentals", 9)
	logger.Warn("slow query")
	logger.Error("write failed", "error", "disk full")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "seeded catalog")
	assert.Contains(t, out.String(), "rentals=9")
	assert.Contains(t, out.String(), "slow query")
	assert.NotContains(t, out.String(), "write failed")
	assert.Contains(t, errOut.String(), "write failed")
}

func TestHandlerKeepsAttrsAndGroups(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := slog.New(NewHandler(&out, &errOut, slog.LevelDebug)).
		With("component", "store").
		WithGroup("req")

	logger.Debug("lookup", "id", 4)
	logger.Error("boom")

	assert.Contains(t, out.String(), "component=store")
	assert.Contains(t, out.String(), "req.id=4")
	assert.Contains(t, errOut.String(), "component=store")
}

func TestSetupWritesLogFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "glitzme.log")
	cleanup, err := Setup(path, slog.LevelWarn)
	require.NoError(t, err)

	slog.Info("skipped")
	slog.Warn("kept")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kept")
	assert.NotContains(t, string(data), "skipped")
}
