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

type SubscriptionRepo struct {
	pool *pgxpool.Pool
}

func NewSubscriptionRepo(pool *pgxpool.Pool) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool}
}

func (r *SubscriptionRepo) Create(ctx context.Context, sub *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, account_id, tier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		sub.ID, sub.AccountID, sub.Tier.ID, sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "subscriptions_account_id_key") {
			return domain.ErrAlreadySubscribed
		}
		return fmt.Errorf("inserting subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepo) GetByAccount(ctx context.Context, accountID uuid.UUID) (*entity.Subscription, error) {
	query := `
		SELECT s.id, s.account_id, s.created_at, s.updated_at,
		       t.id, t.name, t.allow_original, t.allow_expiring_link, t.created_at
		FROM subscriptions s
		JOIN tiers t ON t.id = s.tier_id
		WHERE s.account_id = $1
	`
	var sub entity.Subscription
	var tier entity.Tier
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&sub.ID, &sub.AccountID, &sub.CreatedAt, &sub.UpdatedAt,
		&tier.ID, &tier.Name, &tier.AllowOriginal, &tier.AllowExpiringLink, &tier.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotSubscribed
		}
		return nil, fmt.Errorf("querying subscription: %w", err)
	}

	sizes, err := loadTierSizes(ctx, r.pool, tier.ID)
	if err != nil {
		return nil, err
	}
	tier.Sizes = sizes
	sub.Tier = &tier
	return &sub, nil
}

func (r *SubscriptionRepo) UpdateTier(ctx context.Context, sub *entity.Subscription) error {
	query := `
		UPDATE subscriptions
		SET tier_id = $2, updated_at = $3
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, sub.ID, sub.Tier.ID, sub.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating subscription tier: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotSubscribed
	}
	return nil
}

func (r *SubscriptionRepo) DeleteByAccount(ctx context.Context, accountID uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM subscriptions WHERE account_id = $1`, accountID)
	if err != nil {
		return fmt.Errorf("deleting subscription: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotSubscribed
	}
	return nil
}
