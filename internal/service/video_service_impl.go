package service

import (
	"context"

	"github.com/natanielandrade/backend/internal/model"
	"github.com/natanielandrade/backend/internal/repository"
	"github.com/natanielandrade/backend/pkg/youtube"
)

type videoServiceImpl struct {
	repo repository.VideoRepository
}

// NewVideoService creates a VideoService backed by the given repository.
func NewVideoService(repo repository.VideoRepository) VideoService {
	return &videoServiceImpl{repo: repo}
}

func (s *videoServiceImpl) List(ctx context.Context) ([]*model.Video, error) {
	return s.repo.List(ctx)
}

func (s *videoServiceImpl) Create(ctx context.Context, title, url string) (*model.Video, error) {
	if _, ok := youtube.ExtractVideoID(url); !ok {
		return nil, ErrInvalidVideoURL
	}
	video := &model.Video{
		Title:     title,
		URL:       url,
		Thumbnail: youtube.Thumbnail(url),
	}
	if err := s.repo.Create(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *videoServiceImpl) Update(ctx context.Context, id, title, url string) (*model.Video, error) {
	if _, ok := youtube.ExtractVideoID(url); !ok {
		return nil, ErrInvalidVideoURL
	}
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	video.Title = title
	video.URL = url
	video.Thumbnail = youtube.Thumbnail(url)
	if err := s.repo.Update(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *videoServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
