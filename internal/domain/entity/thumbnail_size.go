package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/blacha370/Image-Service/internal/domain"
)

// ThumbnailSize is a registered thumbnail target height. Heights are unique
// across the catalog and immutable once created.
type ThumbnailSize struct {
	ID     uuid.UUID
	Height int
}

func NewThumbnailSize(height int) (*ThumbnailSize, error) {
	if height <= 0 {
		return nil, domain.ErrInvalidHeight
	}
	return &ThumbnailSize{
		ID:     uuid.New(),
		Height: height,
	}, nil
}

// Label is the size as rendered in API responses, e.g. "200px".
func (s ThumbnailSize) Label() string {
	return fmt.Sprintf("%dpx", s.Height)
}
