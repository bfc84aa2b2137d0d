package service

import (
	"context"

	"github.com/natanielandrade/backend/internal/model"
	"github.com/natanielandrade/backend/internal/repository"
)

type courseServiceImpl struct {
	repo repository.CourseRepository
}

// NewCourseService creates a CourseService backed by the given repository.
func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseServiceImpl{repo: repo}
}

func (s *courseServiceImpl) List(ctx context.Context) ([]*model.Course, error) {
	return s.repo.List(ctx)
}

func (s *courseServiceImpl) GetByID(ctx context.Context, id string) (*model.Course, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *courseServiceImpl) Create(ctx context.Context, course *model.Course) error {
	return s.repo.Create(ctx, course)
}

func (s *courseServiceImpl) Update(ctx context.Context, course *model.Course) error {
	return s.repo.Update(ctx, course)
}

func (s *courseServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
