package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/natanielandrade/backend/internal/model"
)

// PgCourseRepository is the PostgreSQL implementation of CourseRepository.
type PgCourseRepository struct {
	pool *pgxpool.Pool
}

// NewPgCourseRepository creates a PgCourseRepository backed by the given pool.
func NewPgCourseRepository(pool *pgxpool.Pool) *PgCourseRepository {
	return &PgCourseRepository{pool: pool}
}

var _ CourseRepository = (*PgCourseRepository)(nil)

const courseSelectCols = `id, name, description, link, COALESCE(image, ''), created_at, updated_at`

// List returns all courses, newest first.
func (r *PgCourseRepository) List(ctx context.Context) ([]*model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+courseSelectCols+` FROM courses ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Link, &c.Image, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, &c)
	}
	return courses, rows.Err()
}

// GetByID returns the course with the given id, or ErrNotFound.
func (r *PgCourseRepository) GetByID(ctx context.Context, id string) (*model.Course, error) {
	var c model.Course
	err := r.pool.QueryRow(ctx,
		`SELECT `+courseSelectCols+` FROM courses WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Description, &c.Link, &c.Image, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new courses row and populates course.ID and timestamps
// from the RETURNING clause.
func (r *PgCourseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO courses (name, description, link, image)
		 VALUES ($1, $2, $3, NULLIF($4, ''))
		 RETURNING id, created_at, updated_at`,
		course.Name, course.Description, course.Link, course.Image,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
}

// Update overwrites the mutable fields of an existing course.
// Returns ErrNotFound when the id does not exist.
func (r *PgCourseRepository) Update(ctx context.Context, course *model.Course) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE courses SET name = $1, description = $2, link = $3, image = NULLIF($4, ''), updated_at = NOW()
		 WHERE id = $5`,
		course.Name, course.Description, course.Link, course.Image, course.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete hard-deletes a course. Returns ErrNotFound when the id does not exist.
func (r *PgCourseRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of courses.
func (r *PgCourseRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n)
	return n, err
}
