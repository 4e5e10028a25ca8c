package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// CookieName is the name of the admin session cookie.
const CookieName = "glitzme_session"

// SessionStore carries a Session between requests.
type SessionStore interface {
	// Load returns the request's session, or nil when there is none.
	Load(r *http.Request) (*Session, error)
	Save(w http.ResponseWriter, s *Session) error
	// Clear ends the request's session. It is safe to call without one.
	Clear(w http.ResponseWriter, r *http.Request) error
}

// Revoker records sessions that were ended before they expired.
type Revoker interface {
	RevokeSession(ctx context.Context, id string, expiresAt time.Time) error
	IsSessionRevoked(ctx context.Context, id string) (bool, error)
}

// CookieStore keeps the session in a signed JWT cookie. Logging out revokes
// the session ID so a copied cookie stops working too.
type CookieStore struct {
	key     []byte
	revoker Revoker

	// MaxAge bounds the cookie lifetime in the browser. Zero means a
	// browser-session cookie.
	MaxAge time.Duration
	// Secure marks the cookie HTTPS-only.
	Secure bool
}

var _ SessionStore = (*CookieStore)(nil)

// NewCookieStore returns a store signing cookies with key.
func NewCookieStore(key []byte, revoker Revoker) *CookieStore {
	return &CookieStore{key: key, revoker: revoker}
}

// Load decodes the session cookie. Missing, tampered and revoked cookies all
// yield a nil session; only revocation lookup failures are errors.
func (c *CookieStore) Load(r *http.Request) (*Session, error) {
	s := c.decode(r)
	if s == nil {
		return nil, nil
	}

	revoked, err := c.revoker.IsSessionRevoked(r.Context(), s.ID)
	if err != nil {
		return nil, fmt.Errorf("checking session: %w", err)
	}
	if revoked {
		return nil, nil
	}
	return s, nil
}

// Save writes s as the session cookie.
func (c *CookieStore) Save(w http.ResponseWriter, s *Session) error {
	if s == nil {
		return errors.New("saving nil session")
	}

	token, err := encodeSession(c.key, s, time.Now())
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(c.MaxAge / time.Second),
	})
	return nil
}

// Clear revokes the request's session, if any, and deletes the cookie.
func (c *CookieStore) Clear(w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})

	s := c.decode(r)
	if s == nil {
		return nil
	}
	if err := c.revoker.RevokeSession(r.Context(), s.ID, s.ExpiresAt); err != nil {
		return fmt.Errorf("ending session: %w", err)
	}
	return nil
}

func (c *CookieStore) decode(r *http.Request) *Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	s, err := decodeSession(c.key, cookie.Value)
	if err != nil {
		return nil
	}
	return s
}
