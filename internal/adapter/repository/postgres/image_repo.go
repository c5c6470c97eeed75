package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blacha370/Image-Service/internal/domain"
	"github.com/blacha370/Image-Service/internal/domain/entity"
)

type ImageRepo struct {
	pool *pgxpool.Pool
}

func NewImageRepo(pool *pgxpool.Pool) *ImageRepo {
	return &ImageRepo{pool: pool}
}

func (r *ImageRepo) Create(ctx context.Context, img *entity.Image) error {
	query := `
		INSERT INTO images (id, name, owner_id, url, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		img.ID, img.Name, img.OwnerID, img.URL, img.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "images_name_key") {
			return domain.ErrNameTaken
		}
		return fmt.Errorf("inserting image: %w", err)
	}
	return nil
}

func (r *ImageRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Image, error) {
	query := `
		SELECT id, name, owner_id, url, created_at
		FROM images
		WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *ImageRepo) GetByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*entity.Image, error) {
	query := `
		SELECT id, name, owner_id, url, created_at
		FROM images
		WHERE owner_id = $1 AND name = $2
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, ownerID, name))
}

func (r *ImageRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Image, error) {
	query := `
		SELECT id, name, owner_id, url, created_at
		FROM images
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying images: %w", err)
	}
	defer rows.Close()

	var images []entity.Image
	for rows.Next() {
		var img entity.Image
		if err := rows.Scan(&img.ID, &img.Name, &img.OwnerID, &img.URL, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning image: %w", err)
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

func (r *ImageRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM images WHERE owner_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting images: %w", err)
	}
	return count, nil
}

func (r *ImageRepo) scanOne(row pgx.Row) (*entity.Image, error) {
	var img entity.Image
	err := row.Scan(&img.ID, &img.Name, &img.OwnerID, &img.URL, &img.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("querying image: %w", err)
	}
	return &img, nil
}
