package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/blacha370/Image-Service/internal/domain/entity"
	"github.com/blacha370/Image-Service/internal/usecase/auth"
	"github.com/blacha370/Image-Service/internal/usecase/image"
	"github.com/blacha370/Image-Service/internal/usecase/link"
	"github.com/blacha370/Image-Service/internal/usecase/tier"
	"github.com/blacha370/Image-Service/internal/usecase/upload"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type AuthService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AccessToken, *entity.User, error)
}

type TierService interface {
	GetOrCreateSize(ctx context.Context, height int) (*entity.ThumbnailSize, error)
	CreateTier(ctx context.Context, input tier.CreateTierInput) (*entity.Tier, error)
	DeleteTier(ctx context.Context, tierID uuid.UUID) error
	Subscribe(ctx context.Context, accountID, tierID uuid.UUID) (*entity.Subscription, error)
	ChangeTier(ctx context.Context, accountID, tierID uuid.UUID) (*entity.Subscription, error)
	Unsubscribe(ctx context.Context, accountID uuid.UUID) error
	GetSubscription(ctx context.Context, accountID uuid.UUID) (*entity.Subscription, error)
}

type UploadService interface {
	Upload(ctx context.Context, input upload.UploadInput) (*upload.UploadResult, error)
}

type ImageService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]entity.Image, error)
	ListWithThumbnails(ctx context.Context, ownerID uuid.UUID) ([]image.Detail, error)
	GetByName(ctx context.Context, ownerID uuid.UUID, name string) (*image.Detail, error)
}

type LinkService interface {
	Generate(ctx context.Context, input link.GenerateInput) (*entity.ExpiringLink, error)
	Resolve(ctx context.Context, name string) (*link.ResolvedImage, error)
}
