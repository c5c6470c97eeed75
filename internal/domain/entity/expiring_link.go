package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blacha370/Image-Service/internal/domain"
)

const (
	MinLinkSeconds = 300
	MaxLinkSeconds = 30000
)

// ExpiringLink is a time-bounded public alias for one image. A link past its
// expiry is treated as nonexistent on read; it is never reactivated and never
// eagerly deleted.
type ExpiringLink struct {
	ID        uuid.UUID
	Name      string
	ImageID   uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewExpiringLink mints a link for an image with a stored original. The name
// is derived from the global link count, the creation timestamp and the image
// name. Tier permission is the caller's responsibility and must be checked
// against the current subscription at call time.
func NewExpiringLink(img *Image, seconds int, linkCount int64) (*ExpiringLink, error) {
	if img == nil {
		return nil, domain.ErrImageNotFound
	}
	if seconds < MinLinkSeconds || seconds > MaxLinkSeconds {
		return nil, domain.ErrExpiryOutOfRange
	}
	if !img.HasOriginal() {
		return nil, domain.ErrImageNotLinkable
	}
	now := time.Now().UTC()
	return &ExpiringLink{
		ID:        uuid.New(),
		Name:      fmt.Sprintf("%d%d%s", linkCount, now.Unix(), img.Name),
		ImageID:   img.ID,
		ExpiresAt: now.Add(time.Duration(seconds) * time.Second),
		CreatedAt: now,
	}, nil
}

// Expired reports whether the link is past its expiry at the given instant.
func (l *ExpiringLink) Expired(now time.Time) bool {
	return !l.ExpiresAt.After(now)
}
