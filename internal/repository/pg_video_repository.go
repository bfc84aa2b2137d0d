package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/natanielandrade/backend/internal/model"
)

// PgVideoRepository is the PostgreSQL implementation of VideoRepository.
type PgVideoRepository struct {
	pool *pgxpool.Pool
}

// NewPgVideoRepository creates a PgVideoRepository backed by the given pool.
func NewPgVideoRepository(pool *pgxpool.Pool) *PgVideoRepository {
	return &PgVideoRepository{pool: pool}
}

var _ VideoRepository = (*PgVideoRepository)(nil)

const videoSelectCols = `id, title, url, thumbnail, created_at, updated_at`

// List returns all videos, newest first.
func (r *PgVideoRepository) List(ctx context.Context) ([]*model.Video, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+videoSelectCols+` FROM videos ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []*model.Video
	for rows.Next() {
		var v model.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.URL, &v.Thumbnail, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		videos = append(videos, &v)
	}
	return videos, rows.Err()
}

// GetByID returns the video with the given id, or ErrNotFound.
func (r *PgVideoRepository) GetByID(ctx context.Context, id string) (*model.Video, error) {
	var v model.Video
	err := r.pool.QueryRow(ctx,
		`SELECT `+videoSelectCols+` FROM videos WHERE id = $1`, id,
	).Scan(&v.ID, &v.Title, &v.URL, &v.Thumbnail, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create inserts a new videos row and populates video.ID and timestamps.
func (r *PgVideoRepository) Create(ctx context.Context, video *model.Video) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO videos (title, url, thumbnail)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		video.Title, video.URL, video.Thumbnail,
	).Scan(&video.ID, &video.CreatedAt, &video.UpdatedAt)
}

// Update overwrites title, url and thumbnail of an existing video.
// Returns ErrNotFound when the id does not exist.
func (r *PgVideoRepository) Update(ctx context.Context, video *model.Video) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE videos SET title = $1, url = $2, thumbnail = $3, updated_at = NOW()
		 WHERE id = $4`,
		video.Title, video.URL, video.Thumbnail, video.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete hard-deletes a video. Returns ErrNotFound when the id does not exist.
func (r *PgVideoRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of videos.
func (r *PgVideoRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM videos`).Scan(&n)
	return n, err
}
