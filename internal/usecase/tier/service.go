package tier

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/blacha370/Image-Service/internal/adapter/repository"
	"github.com/blacha370/Image-Service/internal/domain/entity"
)

type Service struct {
	sizeRepo repository.SizeRepository
	tierRepo repository.TierRepository
	subRepo  repository.SubscriptionRepository
}

func NewService(
	sizeRepo repository.SizeRepository,
	tierRepo repository.TierRepository,
	subRepo repository.SubscriptionRepository,
) *Service {
	return &Service{
		sizeRepo: sizeRepo,
		tierRepo: tierRepo,
		subRepo:  subRepo,
	}
}

// GetOrCreateSize registers a thumbnail height on first request and returns
// the existing catalog entry on every later one.
func (s *Service) GetOrCreateSize(ctx context.Context, height int) (*entity.ThumbnailSize, error) {
	size, err := entity.NewThumbnailSize(height)
	if err != nil {
		return nil, err
	}

	registered, err := s.sizeRepo.GetOrCreate(ctx, size)
	if err != nil {
		return nil, fmt.Errorf("registering thumbnail size: %w", err)
	}
	return registered, nil
}

type CreateTierInput struct {
	Name              string
	Heights           []int
	AllowOriginal     bool
	AllowExpiringLink bool
}

func (s *Service) CreateTier(ctx context.Context, input CreateTierInput) (*entity.Tier, error) {
	sizes := make([]entity.ThumbnailSize, 0, len(input.Heights))
	for _, height := range input.Heights {
		size, err := s.GetOrCreateSize(ctx, height)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, *size)
	}

	tier, err := entity.NewTier(input.Name, sizes, input.AllowOriginal, input.AllowExpiringLink)
	if err != nil {
		return nil, err
	}

	if err := s.tierRepo.Create(ctx, tier); err != nil {
		return nil, err
	}

	return tier, nil
}

func (s *Service) DeleteTier(ctx context.Context, tierID uuid.UUID) error {
	return s.tierRepo.Delete(ctx, tierID)
}

func (s *Service) Subscribe(ctx context.Context, accountID, tierID uuid.UUID) (*entity.Subscription, error) {
	tier, err := s.tierRepo.GetByID(ctx, tierID)
	if err != nil {
		return nil, err
	}

	sub, err := entity.NewSubscription(accountID, tier)
	if err != nil {
		return nil, err
	}

	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

func (s *Service) ChangeTier(ctx context.Context, accountID, tierID uuid.UUID) (*entity.Subscription, error) {
	sub, err := s.subRepo.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	tier, err := s.tierRepo.GetByID(ctx, tierID)
	if err != nil {
		return nil, err
	}

	if err := sub.ChangeTier(tier); err != nil {
		return nil, err
	}

	if err := s.subRepo.UpdateTier(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// Unsubscribe revokes all derived permissions immediately: subsequent policy
// lookups fail, closing the upload and link paths for the account.
func (s *Service) Unsubscribe(ctx context.Context, accountID uuid.UUID) error {
	return s.subRepo.DeleteByAccount(ctx, accountID)
}

func (s *Service) GetSubscription(ctx context.Context, accountID uuid.UUID) (*entity.Subscription, error) {
	return s.subRepo.GetByAccount(ctx, accountID)
}
