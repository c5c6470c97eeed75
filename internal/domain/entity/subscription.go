package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/blacha370/Image-Service/internal/domain"
)

// Subscription binds exactly one account to one tier at a time.
type Subscription struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Tier      *Tier
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewSubscription(accountID uuid.UUID, tier *Tier) (*Subscription, error) {
	if accountID == uuid.Nil {
		return nil, domain.ErrInvalidOwner
	}
	if tier == nil {
		return nil, domain.ErrTierNotFound
	}
	now := time.Now().UTC()
	return &Subscription{
		ID:        uuid.New(),
		AccountID: accountID,
		Tier:      tier,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ChangeTier replaces the bound tier, rejecting a no-op change.
func (s *Subscription) ChangeTier(tier *Tier) error {
	if tier == nil {
		return domain.ErrTierNotFound
	}
	if s.Tier != nil && s.Tier.ID == tier.ID {
		return domain.ErrSameTier
	}
	s.Tier = tier
	s.UpdatedAt = time.Now().UTC()
	return nil
}
