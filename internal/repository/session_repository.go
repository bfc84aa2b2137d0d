package repository

import (
	"context"

	"github.com/natanielandrade/backend/internal/model"
)

// SessionRepository defines the persistence interface for admin sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *model.Session) error
	FindByToken(ctx context.Context, token string) (*model.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}
