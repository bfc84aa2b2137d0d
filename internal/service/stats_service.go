package service

import (
	"context"

	"github.com/natanielandrade/backend/internal/model"
	"github.com/natanielandrade/backend/internal/repository"
)

// Stats is the admin dashboard summary.
type Stats struct {
	TotalCourses    int `json:"totalCourses"`
	TotalVideos     int `json:"totalVideos"`
	TotalMessages   int `json:"totalMessages"`
	PendingMessages int `json:"pendingMessages"`
}

// StatsService computes the dashboard aggregates. No caching: every call
// reflects current persisted state.
type StatsService interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type statsServiceImpl struct {
	courses  repository.CourseRepository
	videos   repository.VideoRepository
	contacts repository.ContactRepository
}

// NewStatsService creates a StatsService over the three entity repositories.
func NewStatsService(courses repository.CourseRepository, videos repository.VideoRepository, contacts repository.ContactRepository) StatsService {
	return &statsServiceImpl{courses: courses, videos: videos, contacts: contacts}
}

// GetStats runs the four independent count queries and returns them flat.
func (s *statsServiceImpl) GetStats(ctx context.Context) (*Stats, error) {
	totalCourses, err := s.courses.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalVideos, err := s.videos.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalMessages, err := s.contacts.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.contacts.CountByStatus(ctx, model.StatusPending)
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalCourses:    totalCourses,
		TotalVideos:     totalVideos,
		TotalMessages:   totalMessages,
		PendingMessages: pending,
	}, nil
}
