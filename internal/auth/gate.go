package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMissingPassword is returned when no admin password is configured.
	ErrMissingPassword = errors.New("admin password is not configured")
	// ErrInvalidTTL is returned for a non-positive session lifetime.
	ErrInvalidTTL = errors.New("session ttl must be positive")
)

// DefaultTTL is the session lifetime used when none is configured.
const DefaultTTL = time.Hour

// Session is an authenticated admin session. A nil *Session is anonymous.
type Session struct {
	ID        string
	ExpiresAt time.Time
}

// Gate checks the shared admin password and decides whether a session is
// still valid. It holds only a bcrypt hash of the password.
type Gate struct {
	hash []byte
	ttl  time.Duration
	cost int
	now  func() time.Time
}

// Option configures a Gate.
type Option func(*Gate)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

// WithCost sets the bcrypt cost used to hash the password.
func WithCost(cost int) Option {
	return func(g *Gate) { g.cost = cost }
}

// NewGate hashes password and returns a Gate issuing sessions that last ttl.
func NewGate(password string, ttl time.Duration, opts ...Option) (*Gate, error) {
	if strings.TrimSpace(password) == "" {
		return nil, ErrMissingPassword
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}

	g := &Gate{ttl: ttl, cost: bcrypt.DefaultCost, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), g.cost)
	if err != nil {
		return nil, fmt.Errorf("hashing admin password: %w", err)
	}
	g.hash = hash
	return g, nil
}

// Authenticate starts a session when password matches. A wrong password
// returns false and changes nothing; there is no lockout.
func (g *Gate) Authenticate(password string) (*Session, bool) {
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(password)); err != nil {
		return nil, false
	}
	return &Session{
		ID:        newSessionID(),
		ExpiresAt: g.now().Add(g.ttl),
	}, true
}

// IsAuthenticated reports whether s is a live session. The expiry is fixed
// at login; checking does not extend it.
func (g *Gate) IsAuthenticated(s *Session) bool {
	return s != nil && g.now().Before(s.ExpiresAt)
}

// TTL returns the session lifetime.
func (g *Gate) TTL() time.Duration {
	return g.ttl
}

// newSessionID returns 128 random bits, hex encoded.
func newSessionID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
