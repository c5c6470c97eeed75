package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blacha370/Image-Service/internal/domain"
	"github.com/blacha370/Image-Service/internal/domain/entity"
)

type LinkRepo struct {
	pool *pgxpool.Pool
}

func NewLinkRepo(pool *pgxpool.Pool) *LinkRepo {
	return &LinkRepo{pool: pool}
}

func (r *LinkRepo) Create(ctx context.Context, link *entity.ExpiringLink) error {
	query := `
		INSERT INTO expiring_links (id, name, image_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		link.ID, link.Name, link.ImageID, link.ExpiresAt, link.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "expiring_links_name_key") {
			return domain.ErrNameTaken
		}
		return fmt.Errorf("inserting expiring link: %w", err)
	}
	return nil
}

// GetActiveByName returns the link only while its expiry is in the future.
// Expired rows are left in place and become indistinguishable from absent
// ones to callers.
func (r *LinkRepo) GetActiveByName(ctx context.Context, name string, now time.Time) (*entity.ExpiringLink, error) {
	query := `
		SELECT id, name, image_id, expires_at, created_at
		FROM expiring_links
		WHERE name = $1 AND expires_at > $2
	`
	var link entity.ExpiringLink
	err := r.pool.QueryRow(ctx, query, name, now).Scan(
		&link.ID, &link.Name, &link.ImageID, &link.ExpiresAt, &link.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, fmt.Errorf("querying expiring link: %w", err)
	}
	return &link, nil
}

func (r *LinkRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM expiring_links`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting expiring links: %w", err)
	}
	return count, nil
}
