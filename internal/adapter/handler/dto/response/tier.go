package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/blacha370/Image-Service/internal/domain/entity"
)

type SizeResponse struct {
	ID     uuid.UUID `json:"id"`
	Height int       `json:"height"`
	Label  string    `json:"label"`
}

type TierResponse struct {
	ID                uuid.UUID      `json:"id"`
	Name              string         `json:"name"`
	AllowOriginal     bool           `json:"allow_original"`
	AllowExpiringLink bool           `json:"allow_expiring_link"`
	Sizes             []SizeResponse `json:"sizes"`
	CreatedAt         time.Time      `json:"created_at"`
}

type SubscriptionResponse struct {
	ID        uuid.UUID    `json:"id"`
	AccountID uuid.UUID    `json:"account_id"`
	Tier      TierResponse `json:"tier"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func SizeFromEntity(s entity.ThumbnailSize) SizeResponse {
	return SizeResponse{
		ID:     s.ID,
		Height: s.Height,
		Label:  s.Label(),
	}
}

func TierFromEntity(t *entity.Tier) TierResponse {
	sizes := make([]SizeResponse, 0, len(t.Sizes))
	for _, s := range t.Sizes {
		sizes = append(sizes, SizeFromEntity(s))
	}
	return TierResponse{
		ID:                t.ID,
		Name:              t.Name,
		AllowOriginal:     t.AllowOriginal,
		AllowExpiringLink: t.AllowExpiringLink,
		Sizes:             sizes,
		CreatedAt:         t.CreatedAt,
	}
}

func SubscriptionFromEntity(s *entity.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:        s.ID,
		AccountID: s.AccountID,
		Tier:      TierFromEntity(s.Tier),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
