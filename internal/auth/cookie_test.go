package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRevoker struct {
	revoked map[string]time.Time
	err     error
}

func newMemRevoker() *memRevoker {
	return &memRevoker{revoked: map[string]time.Time{}}
}

func (m *memRevoker) RevokeSession(_ context.Context, id string, expiresAt time.Time) error {
	if m.err != nil {
		return m.err
	}
	m.revoked[id] = expiresAt
	return nil
}

func (m *memRevoker) IsSessionRevoked(_ context.Context, id string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.revoked[id]
	return ok, nil
}

// requestWith returns a request carrying the cookies set on rec.
func requestWith(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestCookieStoreRoundTrip(t *testing.T) {
	store := NewCookieStore([]byte("key"), newMemRevoker())
	store.MaxAge = time.Hour
	s := &Session{ID: "abc", ExpiresAt: time.Now().Add(time.Hour).Truncate(time.Second)}

	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, s))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	got, err := store.Load(requestWith(rec))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, s.ID, got.ID)
	assert.True(t, s.ExpiresAt.Equal(got.ExpiresAt))
}

func TestCookieStoreKeepsExpiredSessions(t *testing.T) {
	store := NewCookieStore([]byte("key"), newMemRevoker())
	s := &Session{ID: "old", ExpiresAt: time.Now().Add(-time.Hour)}

	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, s))

	got, err := store.Load(requestWith(rec))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "old", got.ID)
}

func TestCookieStoreLoadAnonymous(t *testing.T) {
	store := NewCookieStore([]byte("key"), newMemRevoker())

	got, err := store.Load(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	assert.Nil(t, got)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-token"})
	got, err = store.Load(req)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCookieStoreRejectsForeignKey(t *testing.T) {
	rec := httptest.NewRecorder()
	other := NewCookieStore([]byte("other"), newMemRevoker())
	require.NoError(t, other.Save(rec, &Session{ID: "x", ExpiresAt: time.Now().Add(time.Hour)}))

	store := NewCookieStore([]byte("key"), newMemRevoker())
	got, err := store.Load(requestWith(rec))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCookieStoreClearRevokes(t *testing.T) {
	revoker := newMemRevoker()
	store := NewCookieStore([]byte("key"), revoker)
	s := &Session{ID: "abc", ExpiresAt: time.Now().Add(time.Hour)}

	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, s))
	req := requestWith(rec)

	clearRec := httptest.NewRecorder()
	require.NoError(t, store.Clear(clearRec, req))
	assert.Contains(t, revoker.revoked, "abc")

	cleared := clearRec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, "", cleared[0].Value)
	assert.Less(t, cleared[0].MaxAge, 0)

	// A copy of the old cookie no longer authenticates.
	got, err := store.Load(req)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCookieStoreClearWithoutSession(t *testing.T) {
	store := NewCookieStore([]byte("key"), newMemRevoker())
	rec := httptest.NewRecorder()
	assert.NoError(t, store.Clear(rec, httptest.NewRequest(http.MethodPost, "/admin/logout", nil)))
}

func TestCookieStorePropagatesRevokerErrors(t *testing.T) {
	revoker := newMemRevoker()
	store := NewCookieStore([]byte("key"), revoker)

	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, &Session{ID: "abc", ExpiresAt: time.Now().Add(time.Hour)}))

	revoker.err = errors.New("disk on fire")
	_, err := store.Load(requestWith(rec))
	assert.ErrorIs(t, err, revoker.err)
	assert.ErrorIs(t, store.Clear(httptest.NewRecorder(), requestWith(rec)), revoker.err)
}

func TestLoginThenLogout(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	gate := newTestGate(t, clock)
	store := NewCookieStore([]byte("key"), newMemRevoker())

	session, ok := gate.Authenticate("secret")
	require.True(t, ok)

	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, session))
	req := requestWith(rec)

	loaded, err := store.Load(req)
	require.NoError(t, err)
	assert.True(t, gate.IsAuthenticated(loaded))

	require.NoError(t, store.Clear(httptest.NewRecorder(), req))

	loaded, err = store.Load(req)
	require.NoError(t, err)
	assert.False(t, gate.IsAuthenticated(loaded))
}
