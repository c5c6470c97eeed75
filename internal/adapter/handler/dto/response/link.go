package response

import (
	"github.com/blacha370/Image-Service/internal/domain/entity"
)

// ExpiryTimeLayout matches the original service's public time format.
const ExpiryTimeLayout = "15:04:05 02.01.06"

type LinkResponse struct {
	URL          string `json:"url"`
	ExpiringTime string `json:"expiring_time"`
}

func LinkFromEntity(l *entity.ExpiringLink, url string) LinkResponse {
	return LinkResponse{
		URL:          url,
		ExpiringTime: l.ExpiresAt.Format(ExpiryTimeLayout),
	}
}
