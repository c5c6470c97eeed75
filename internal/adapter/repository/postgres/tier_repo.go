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

type TierRepo struct {
	pool *pgxpool.Pool
}

func NewTierRepo(pool *pgxpool.Pool) *TierRepo {
	return &TierRepo{pool: pool}
}

// Create persists the tier and its size set in one transaction. The unique
// indexes on name and bundle_key are the authority for duplicate detection
// under concurrent creates.
func (r *TierRepo) Create(ctx context.Context, tier *entity.Tier) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertTier := `
		INSERT INTO tiers (id, name, allow_original, allow_expiring_link, bundle_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = tx.Exec(ctx, insertTier,
		tier.ID, tier.Name, tier.AllowOriginal, tier.AllowExpiringLink, tier.BundleKey(), tier.CreatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err, "tiers_name_key"):
			return domain.ErrTierNameTaken
		case isUniqueViolation(err, "tiers_bundle_key_key"):
			return domain.ErrTierBundleExists
		}
		return fmt.Errorf("inserting tier: %w", err)
	}

	insertSize := `INSERT INTO tier_sizes (tier_id, size_id) VALUES ($1, $2)`
	for _, size := range tier.Sizes {
		if _, err := tx.Exec(ctx, insertSize, tier.ID, size.ID); err != nil {
			return fmt.Errorf("inserting tier size: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing tier: %w", err)
	}
	return nil
}

func (r *TierRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Tier, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *TierRepo) GetByName(ctx context.Context, name string) (*entity.Tier, error) {
	return r.get(ctx, `WHERE name = $1`, name)
}

func (r *TierRepo) get(ctx context.Context, where string, arg any) (*entity.Tier, error) {
	query := fmt.Sprintf(`
		SELECT id, name, allow_original, allow_expiring_link, created_at
		FROM tiers
		%s
	`, where)
	var tier entity.Tier
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&tier.ID, &tier.Name, &tier.AllowOriginal, &tier.AllowExpiringLink, &tier.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTierNotFound
		}
		return nil, fmt.Errorf("querying tier: %w", err)
	}

	sizes, err := loadTierSizes(ctx, r.pool, tier.ID)
	if err != nil {
		return nil, err
	}
	tier.Sizes = sizes
	return &tier, nil
}

func (r *TierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM tiers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting tier: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTierNotFound
	}
	return nil
}

func loadTierSizes(ctx context.Context, pool *pgxpool.Pool, tierID uuid.UUID) ([]entity.ThumbnailSize, error) {
	query := `
		SELECT s.id, s.height
		FROM thumbnail_sizes s
		JOIN tier_sizes ts ON ts.size_id = s.id
		WHERE ts.tier_id = $1
		ORDER BY s.height DESC
	`
	rows, err := pool.Query(ctx, query, tierID)
	if err != nil {
		return nil, fmt.Errorf("querying tier sizes: %w", err)
	}
	defer rows.Close()

	var sizes []entity.ThumbnailSize
	for rows.Next() {
		var size entity.ThumbnailSize
		if err := rows.Scan(&size.ID, &size.Height); err != nil {
			return nil, fmt.Errorf("scanning tier size: %w", err)
		}
		sizes = append(sizes, size)
	}

	return sizes, rows.Err()
}
