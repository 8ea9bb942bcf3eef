// Package session implements the cookie-backed authorization context. The
// cookie carries a signed JWT with the user id, display nickname and a role
// snapshot taken at login; the role is not re-read from storage per request,
// so a role change becomes visible at the next login (bounded by the cookie
// lifetime).
package session

import (
	"fmt"
	"net/http"
	"time"

	"harmonic/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the session cookie.
const CookieName = "harmonic_session"

// Session is the per-request authorization state. A nil *Session means
// anonymous.
type Session struct {
	ID       string // token id, also keys the flash store
	UserID   int64
	Nickname string
	Role     model.Role
}

type claims struct {
	UserID   int64  `json:"uid"`
	Nickname string `json:"nick"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and verifies session cookies.
type Manager struct {
	secret   []byte
	lifetime time.Duration
}

// NewManager creates a session manager. lifetime is the absolute expiry
// window counted from login.
func NewManager(secret string, lifetime time.Duration) *Manager {
	return &Manager{secret: []byte(secret), lifetime: lifetime}
}

// Issue creates a session for the user and sets the cookie on the response.
func (m *Manager) Issue(w http.ResponseWriter, user *model.User) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Nickname: user.Nickname,
		Role:     user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID:   sess.UserID,
		Nickname: sess.Nickname,
		Role:     string(sess.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.lifetime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess, nil
}

// Read extracts the session from the request cookie. A missing, expired or
// tampered cookie yields a nil session, never an error surfaced to the user:
// the request simply proceeds as anonymous.
func (m *Manager) Read(r *http.Request) *Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	sess, err := m.Verify(cookie.Value)
	if err != nil {
		return nil
	}
	return sess
}

// Verify parses and validates a raw session token.
func (m *Manager) Verify(raw string) (*Session, error) {
	parsed, err := jwt.ParseWithClaims(raw, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid session claims")
	}

	role := model.Role(c.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("invalid role in session: %q", c.Role)
	}

	return &Session{
		ID:       c.ID,
		UserID:   c.UserID,
		Nickname: c.Nickname,
		Role:     role,
	}, nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
