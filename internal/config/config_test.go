package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{"GLITZME_ADMIN_PASSWORD": "hunter2"})
	require.NoError(t, err)

	assert.Equal(t, ":6001", cfg.Addr)
	assert.Equal(t, "glitzme_rentals.db", cfg.DBPath)
	assert.Equal(t, "hunter2", cfg.AdminPassword)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.LogPath)
	assert.False(t, cfg.SecureCookies)
	assert.NotEmpty(t, cfg.SessionKey)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"GLITZME_ADMIN_PASSWORD": "hunter2",
		"GLITZME_ADDR":           "127.0.0.1:9000",
		"GLITZME_DB":             "/tmp/g.db",
		"GLITZME_SESSION_TTL":    "30m",
		"GLITZME_SESSION_KEY":    "fixed",
		"GLITZME_LOG_LEVEL":      "debug",
		"GLITZME_SECURE_COOKIES": "true",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "/tmp/g.db", cfg.DBPath)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "fixed", cfg.SessionKey)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.SecureCookies)
}

func TestLoadRequiresAdminPassword(t *testing.T) {
	_, err := LoadFrom(map[string]string{})
	assert.ErrorIs(t, err, ErrMissingAdminPassword)

	_, err = LoadFrom(map[string]string{"GLITZME_ADMIN_PASSWORD": "  "})
	assert.ErrorIs(t, err, ErrMissingAdminPassword)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := LoadFrom(map[string]string{
		"GLITZME_ADMIN_PASSWORD": "hunter2",
		"GLITZME_SESSION_TTL":    "soon",
	})
	assert.Error(t, err)

	_, err = LoadFrom(map[string]string{
		"GLITZME_ADMIN_PASSWORD": "hunter2",
		"GLITZME_SESSION_TTL":    "-5m",
	})
	assert.Error(t, err)
}

func TestLoadBaseIgnoresServerSettings(t *testing.T) {
	t.Setenv("GLITZME_ADMIN_PASSWORD", "")
	t.Setenv("GLITZME_DB", "/var/lib/glitzme/site.db")
	t.Setenv("GLITZME_LOG_LEVEL", "warn")

	b, err := LoadBase()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/glitzme/site.db", b.DBPath)
	assert.Equal(t, slog.LevelWarn, b.LogLevel)
}
