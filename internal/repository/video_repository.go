package repository

import (
	"context"

	"github.com/natanielandrade/backend/internal/model"
)

// VideoRepository defines the persistence interface for videos.
type VideoRepository interface {
	List(ctx context.Context) ([]*model.Video, error)
	GetByID(ctx context.Context, id string) (*model.Video, error)
	Create(ctx context.Context, video *model.Video) error
	Update(ctx context.Context, video *model.Video) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
