package repository

import (
	"context"

	"github.com/natanielandrade/backend/internal/model"
)

// CourseRepository defines the persistence interface for courses.
type CourseRepository interface {
	List(ctx context.Context) ([]*model.Course, error)
	GetByID(ctx context.Context, id string) (*model.Course, error)
	Create(ctx context.Context, course *model.Course) error
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
