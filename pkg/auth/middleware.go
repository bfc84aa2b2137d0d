package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

// VerifyFunc resolves a session token to an admin user id. It returns false
// for unknown or expired tokens.
type VerifyFunc func(ctx context.Context, token string) (string, bool)

// RequireSession rejects requests without a valid admin session with 401 and
// a fixed message; the wrapped handler is never invoked in that case. On
// success the admin user id is placed into the request context.
func RequireSession(verify VerifyFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil {
				unauthorized(w)
				return
			}

			userID, ok := verify(r.Context(), cookie.Value)
			if !ok {
				unauthorized(w)
				return
			}

			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Não autorizado"})
}
