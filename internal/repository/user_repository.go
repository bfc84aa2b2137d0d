package repository

import (
	"context"

	"github.com/natanielandrade/backend/internal/model"
)

// UserRepository defines the persistence interface for administrator accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}
