package transport

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"inventoryservice/pkg/domain/model"
)

const sessionCookieName = "sid"

// sessionManager binds the server-side session store to the client cookie.
// The cookie carries "token.signature"; the signature is HMAC-SHA256 over the
// token with the session secret, so a forged token never reaches the store.
type sessionManager struct {
	store  model.SessionStore
	secret []byte
}

func newSessionManager(store model.SessionStore, secret string) *sessionManager {
	return &sessionManager{store: store, secret: []byte(secret)}
}

func (m *sessionManager) sign(token string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(token))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func (m *sessionManager) verify(cookieValue string) (string, bool) {
	token, sig, found := strings.Cut(cookieValue, ".")
	if !found {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(m.sign(token))) {
		return "", false
	}
	return token, true
}

func (m *sessionManager) begin(ctx context.Context, w http.ResponseWriter, username string) error {
	token := uuid.NewString()
	if err := m.store.Put(ctx, token, username); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token + "." + m.sign(token),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *sessionManager) currentUser(r *http.Request) (string, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}

	token, ok := m.verify(c.Value)
	if !ok {
		return "", false
	}

	username, err := m.store.Get(r.Context(), token)
	if err != nil {
		return "", false
	}
	return username, true
}

func (m *sessionManager) end(w http.ResponseWriter, r *http.Request) error {
	c, err := r.Cookie(sessionCookieName)
	if err == nil && c.Value != "" {
		if token, ok := m.verify(c.Value); ok {
			if err := m.store.Delete(r.Context(), token); err != nil {
				return err
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
