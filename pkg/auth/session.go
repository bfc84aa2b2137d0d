package auth

import (
	"context"
	"net/http"
	"time"
)

const sessionCookieName = "coach_session"

// SessionCookieName returns the name of the admin session cookie.
func SessionCookieName() string {
	return sessionCookieName
}

// NewSessionCookie builds the Set-Cookie value for a fresh session token.
func NewSessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearedSessionCookie builds an expired cookie that removes the session.
func ClearedSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

type contextKey string

const userIDKey contextKey = "user_id"

// UserIDFromContext returns the authenticated admin user id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userIDKey).(string)
	return v, ok
}

// WithUserID returns a context carrying the authenticated admin user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
