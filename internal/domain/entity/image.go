package entity

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blacha370/Image-Service/internal/domain"
)

const (
	ExtJPG = ".jpg"
	ExtPNG = ".png"
)

// Image is an uploaded original image. URL is empty unless the owner's tier
// allowed keeping the original at upload time; that decision is taken once and
// never revisited.
type Image struct {
	ID        uuid.UUID
	Name      string
	OwnerID   uuid.UUID
	URL       string
	CreatedAt time.Time
}

// NewImage derives the asset name from the owner id, the creation timestamp
// and the owner's running image count. Uniqueness is still enforced by the
// storage layer; a collision there is a fatal error, not a retried path.
func NewImage(ownerID uuid.UUID, ext string, ownerImageCount int64) (*Image, error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrInvalidOwner
	}
	if ext != ExtJPG && ext != ExtPNG {
		return nil, domain.ErrUnsupportedExtension
	}
	now := time.Now().UTC()
	return &Image{
		ID:        uuid.New(),
		Name:      fmt.Sprintf("%s%d%d%s", ownerID, now.Unix(), ownerImageCount, ext),
		OwnerID:   ownerID,
		CreatedAt: now,
	}, nil
}

func (i *Image) Extension() string {
	return path.Ext(i.Name)
}

// HasOriginal reports whether the original bytes were retained.
func (i *Image) HasOriginal() bool {
	return i.URL != ""
}

func (i *Image) ContentType() string {
	if strings.HasSuffix(i.Name, ExtJPG) {
		return "image/jpeg"
	}
	return "image/png"
}
