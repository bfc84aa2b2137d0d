package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/natanielandrade/backend/internal/service"
	"github.com/natanielandrade/backend/internal/validation"
	"github.com/natanielandrade/backend/pkg/auth"
)

// AuthHandler handles admin login, logout and the current-user lookup.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates an AuthHandler with the given service.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/auth/login. On success the session token is set as
// an HttpOnly cookie and the user profile is returned.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req validation.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}
	if verr := validation.Check(req); verr != nil {
		writeValidationError(w, verr)
		return
	}

	user, session, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, auth.NewSessionCookie(session.Token, session.ExpiresAt))
	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout. The cookie is cleared even when the
// token is already gone server-side.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName()); err == nil {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			slog.Warn("delete session on logout", "error", err)
		}
	}

	http.SetCookie(w, auth.ClearedSessionCookie())
	writeMessage(w, http.StatusOK, "Sessão encerrada")
}

// Me handles GET /api/auth/me for an authenticated session.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Não autorizado")
		return
	}

	user, err := h.authService.Me(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
