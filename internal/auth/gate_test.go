package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestGate(t *testing.T, clock *fakeClock) *Gate {
	t.Helper()
	g, err := NewGate("secret", time.Hour, WithClock(clock.Now), WithCost(bcrypt.MinCost))
	require.NoError(t, err)
	return g
}

func TestNewGateRejectsBadConfig(t *testing.T) {
	_, err := NewGate("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingPassword)

	_, err = NewGate("   ", time.Hour)
	assert.ErrorIs(t, err, ErrMissingPassword)

	_, err = NewGate("secret", 0, WithCost(bcrypt.MinCost))
	assert.ErrorIs(t, err, ErrInvalidTTL)
}

func TestAuthenticate(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	g := newTestGate(t, clock)

	s, ok := g.Authenticate("wrong")
	assert.False(t, ok)
	assert.Nil(t, s)

	s, ok = g.Authenticate("secret")
	require.True(t, ok)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, clock.t.Add(time.Hour), s.ExpiresAt)
	assert.True(t, g.IsAuthenticated(s))
}

func TestSessionIDsAreUnique(t *testing.T) {
	g := newTestGate(t, &fakeClock{t: time.Now()})

	a, ok := g.Authenticate("secret")
	require.True(t, ok)
	b, ok := g.Authenticate("secret")
	require.True(t, ok)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSessionExpires(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	g := newTestGate(t, clock)

	s, ok := g.Authenticate("secret")
	require.True(t, ok)

	clock.Advance(59 * time.Minute)
	assert.True(t, g.IsAuthenticated(s))

	clock.Advance(time.Minute)
	assert.False(t, g.IsAuthenticated(s))
}

func TestIsAuthenticatedNilSession(t *testing.T) {
	g := newTestGate(t, &fakeClock{t: time.Now()})
	assert.False(t, g.IsAuthenticated(nil))
}
