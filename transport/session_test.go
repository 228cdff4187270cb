package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithCookie(value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: value})
	return req
}

func TestSessionRoundTrip(t *testing.T) {
	store := newMemSessionStore()
	m := newSessionManager(store, testSecret)

	rec := httptest.NewRecorder()
	require.NoError(t, m.begin(context.Background(), rec, "alice"))
	cookie := rec.Result().Cookies()[0]

	username, ok := m.currentUser(requestWithCookie(cookie.Value))
	require.True(t, ok)
	assert.Equal(t, "alice", username)
}

func TestSessionRejectsTamperedCookies(t *testing.T) {
	store := newMemSessionStore()
	m := newSessionManager(store, testSecret)

	rec := httptest.NewRecorder()
	require.NoError(t, m.begin(context.Background(), rec, "alice"))
	cookie := rec.Result().Cookies()[0]
	token, sig, _ := strings.Cut(cookie.Value, ".")

	t.Run("Forged token with stale signature", func(t *testing.T) {
		_, ok := m.currentUser(requestWithCookie(uuid.NewString() + "." + sig))
		assert.False(t, ok)
	})

	t.Run("Missing signature", func(t *testing.T) {
		_, ok := m.currentUser(requestWithCookie(token))
		assert.False(t, ok)
	})

	t.Run("Signature under a different secret", func(t *testing.T) {
		other := newSessionManager(store, "other-secret")
		_, ok := other.currentUser(requestWithCookie(cookie.Value))
		assert.False(t, ok)
	})

	t.Run("Valid signature but expired store entry", func(t *testing.T) {
		delete(store.sessions, token)
		_, ok := m.currentUser(requestWithCookie(cookie.Value))
		assert.False(t, ok)
	})
}
