package service

import (
	"context"

	"github.com/natanielandrade/backend/internal/model"
)

// AuthService defines admin authentication: password login, session
// verification and logout.
type AuthService interface {
	// Login verifies the credentials and creates a session. Returns
	// ErrInvalidCredentials for an unknown email or wrong password.
	Login(ctx context.Context, email, password string) (*model.User, *model.Session, error)

	// Verify resolves a session token to a user id. Unknown and expired
	// tokens return false; expired sessions are removed as a side effect.
	Verify(ctx context.Context, token string) (string, bool)

	// Logout deletes the session for the given token.
	Logout(ctx context.Context, token string) error

	// Me returns the user for an authenticated id.
	Me(ctx context.Context, userID string) (*model.User, error)
}
