package repository

import (
	"context"

	"github.com/natanielandrade/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact messages.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context, filter model.StatusFilter) ([]*model.ContactMessage, error)
	GetByID(ctx context.Context, id string) (*model.ContactMessage, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.ContactMessage, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}
