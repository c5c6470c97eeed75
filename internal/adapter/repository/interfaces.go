package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blacha370/Image-Service/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type SizeRepository interface {
	// GetOrCreate registers a height on first request and returns the existing
	// entry on every later one. Concurrent first requests are resolved by the
	// unique index on height, not in-process locking.
	GetOrCreate(ctx context.Context, size *entity.ThumbnailSize) (*entity.ThumbnailSize, error)
	GetByHeight(ctx context.Context, height int) (*entity.ThumbnailSize, error)
	Count(ctx context.Context) (int64, error)
}

type TierRepository interface {
	Create(ctx context.Context, tier *entity.Tier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Tier, error)
	GetByName(ctx context.Context, name string) (*entity.Tier, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entity.Subscription) error
	// GetByAccount returns the subscription with its tier and size set loaded;
	// this is the single policy read every permission check goes through.
	GetByAccount(ctx context.Context, accountID uuid.UUID) (*entity.Subscription, error)
	UpdateTier(ctx context.Context, sub *entity.Subscription) error
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) error
}

type ImageRepository interface {
	Create(ctx context.Context, img *entity.Image) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Image, error)
	GetByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*entity.Image, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Image, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

type ThumbnailRepository interface {
	Create(ctx context.Context, thumb *entity.Thumbnail) error
	ListByImage(ctx context.Context, imageID uuid.UUID) ([]entity.Thumbnail, error)
	ExistsByImageAndSize(ctx context.Context, imageID, sizeID uuid.UUID) (bool, error)
}

type LinkRepository interface {
	Create(ctx context.Context, link *entity.ExpiringLink) error
	// GetActiveByName treats links past their expiry as nonexistent; expired
	// rows stay in place (lazy expiry, compare at read).
	GetActiveByName(ctx context.Context, name string, now time.Time) (*entity.ExpiringLink, error)
	Count(ctx context.Context) (int64, error)
}
