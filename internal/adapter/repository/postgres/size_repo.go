package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blacha370/Image-Service/internal/domain"
	"github.com/blacha370/Image-Service/internal/domain/entity"
)

type SizeRepo struct {
	pool *pgxpool.Pool
}

func NewSizeRepo(pool *pgxpool.Pool) *SizeRepo {
	return &SizeRepo{pool: pool}
}

// GetOrCreate inserts the size unless its height is already registered and
// returns the canonical row either way. ON CONFLICT DO NOTHING keeps the
// operation race-free across processes; the losing insert falls through to
// the select.
func (r *SizeRepo) GetOrCreate(ctx context.Context, size *entity.ThumbnailSize) (*entity.ThumbnailSize, error) {
	insert := `
		INSERT INTO thumbnail_sizes (id, height)
		VALUES ($1, $2)
		ON CONFLICT (height) DO NOTHING
	`
	if _, err := r.pool.Exec(ctx, insert, size.ID, size.Height); err != nil {
		return nil, fmt.Errorf("inserting thumbnail size: %w", err)
	}
	return r.GetByHeight(ctx, size.Height)
}

func (r *SizeRepo) GetByHeight(ctx context.Context, height int) (*entity.ThumbnailSize, error) {
	query := `SELECT id, height FROM thumbnail_sizes WHERE height = $1`
	var size entity.ThumbnailSize
	err := r.pool.QueryRow(ctx, query, height).Scan(&size.ID, &size.Height)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidHeight
		}
		return nil, fmt.Errorf("querying thumbnail size: %w", err)
	}
	return &size, nil
}

func (r *SizeRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM thumbnail_sizes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting thumbnail sizes: %w", err)
	}
	return count, nil
}
