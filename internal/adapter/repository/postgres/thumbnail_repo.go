package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blacha370/Image-Service/internal/domain"
	"github.com/blacha370/Image-Service/internal/domain/entity"
)

type ThumbnailRepo struct {
	pool *pgxpool.Pool
}

func NewThumbnailRepo(pool *pgxpool.Pool) *ThumbnailRepo {
	return &ThumbnailRepo{pool: pool}
}

func (r *ThumbnailRepo) Create(ctx context.Context, thumb *entity.Thumbnail) error {
	query := `
		INSERT INTO thumbnails (id, name, url, image_id, size_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		thumb.ID, thumb.Name, thumb.URL, thumb.ImageID, thumb.SizeID, thumb.CreatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err, "thumbnails_image_id_size_id_key"):
			return domain.ErrThumbnailExists
		case isUniqueViolation(err, "thumbnails_name_key"):
			return domain.ErrNameTaken
		}
		return fmt.Errorf("inserting thumbnail: %w", err)
	}
	return nil
}

func (r *ThumbnailRepo) ListByImage(ctx context.Context, imageID uuid.UUID) ([]entity.Thumbnail, error) {
	query := `
		SELECT t.id, t.name, t.url, t.image_id, t.size_id, s.height, t.created_at
		FROM thumbnails t
		JOIN thumbnail_sizes s ON s.id = t.size_id
		WHERE t.image_id = $1
		ORDER BY s.height DESC
	`
	rows, err := r.pool.Query(ctx, query, imageID)
	if err != nil {
		return nil, fmt.Errorf("querying thumbnails: %w", err)
	}
	defer rows.Close()

	var thumbs []entity.Thumbnail
	for rows.Next() {
		var thumb entity.Thumbnail
		if err := rows.Scan(
			&thumb.ID, &thumb.Name, &thumb.URL, &thumb.ImageID, &thumb.SizeID, &thumb.Height, &thumb.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning thumbnail: %w", err)
		}
		thumbs = append(thumbs, thumb)
	}

	return thumbs, rows.Err()
}

func (r *ThumbnailRepo) ExistsByImageAndSize(ctx context.Context, imageID, sizeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM thumbnails WHERE image_id = $1 AND size_id = $2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, imageID, sizeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking thumbnail: %w", err)
	}
	return exists, nil
}
