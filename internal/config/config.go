// Package config reads the server configuration from GLITZME_* environment
// variables.
package config

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrMissingAdminPassword is returned when GLITZME_ADMIN_PASSWORD is unset or blank.
var ErrMissingAdminPassword = errors.New("GLITZME_ADMIN_PASSWORD must be set")

// Base holds the settings shared by every command.
type Base struct {
	DBPath   string     `env:"GLITZME_DB"        envDefault:"glitzme_rentals.db"`
	LogPath  string     `env:"GLITZME_LOG"`
	LogLevel slog.Level `env:"GLITZME_LOG_LEVEL" envDefault:"info"`
}

// Config holds everything the server needs at startup.
type Config struct {
	Base

	Addr          string        `env:"GLITZME_ADDR"           envDefault:":6001"`
	AdminPassword string        `env:"GLITZME_ADMIN_PASSWORD"`
	SessionTTL    time.Duration `env:"GLITZME_SESSION_TTL"    envDefault:"1h"`
	SessionKey    string        `env:"GLITZME_SESSION_KEY"`
	SecureCookies bool          `env:"GLITZME_SECURE_COOKIES"`
	UploadDir     string        `env:"GLITZME_UPLOAD_DIR"     envDefault:"uploads"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return load(env.Options{})
}

// LoadFrom parses environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return load(env.Options{Environment: environ})
}

// LoadBase parses only the shared settings. It does not need an admin password.
func LoadBase() (Base, error) {
	var b Base
	if err := env.Parse(&b); err != nil {
		return Base{}, fmt.Errorf("parse env: %w", err)
	}
	return b, nil
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	// A generated key invalidates all sessions on restart.
	if cfg.SessionKey == "" {
		cfg.SessionKey = rand.Text()
	}
	return cfg, nil
}

// Validate checks the settings that have no usable default.
func (c Config) Validate() error {
	if strings.TrimSpace(c.AdminPassword) == "" {
		return ErrMissingAdminPassword
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("GLITZME_SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}
