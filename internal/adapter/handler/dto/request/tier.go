package request

import "github.com/google/uuid"

type CreateSizeRequest struct {
	Height int `json:"height" binding:"required"`
}

type CreateTierRequest struct {
	Name              string `json:"name" binding:"required"`
	Heights           []int  `json:"heights" binding:"required"`
	AllowOriginal     bool   `json:"allow_original"`
	AllowExpiringLink bool   `json:"allow_expiring_link"`
}

type SubscribeRequest struct {
	AccountID uuid.UUID `json:"account_id" binding:"required"`
	TierID    uuid.UUID `json:"tier_id" binding:"required"`
}

type ChangeTierRequest struct {
	TierID uuid.UUID `json:"tier_id" binding:"required"`
}
