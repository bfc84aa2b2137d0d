package service

import (
	"context"

	"github.com/natanielandrade/backend/internal/model"
)

// CourseService defines the business logic for course management.
type CourseService interface {
	// List returns all courses, newest first.
	List(ctx context.Context) ([]*model.Course, error)

	// GetByID returns one course or repository.ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Course, error)

	// Create stores a new course. ID and timestamps are populated by the
	// implementation.
	Create(ctx context.Context, course *model.Course) error

	// Update overwrites the mutable fields of an existing course.
	Update(ctx context.Context, course *model.Course) error

	// Delete removes a course permanently.
	Delete(ctx context.Context, id string) error
}
