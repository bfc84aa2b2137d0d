package service

import (
	"context"

	"github.com/natanielandrade/backend/internal/model"
)

// VideoService defines the business logic for the YouTube video catalog.
// Thumbnails are always re-derived from the URL at write time; a caller can
// never supply one directly.
type VideoService interface {
	// List returns all videos, newest first.
	List(ctx context.Context) ([]*model.Video, error)

	// Create stores a new video. Returns ErrInvalidVideoURL when no video id
	// can be extracted from url.
	Create(ctx context.Context, title, url string) (*model.Video, error)

	// Update overwrites title and url of an existing video and re-derives the
	// thumbnail. Returns ErrInvalidVideoURL for unrecognizable urls.
	Update(ctx context.Context, id, title, url string) (*model.Video, error)

	// Delete removes a video permanently.
	Delete(ctx context.Context, id string) error
}
