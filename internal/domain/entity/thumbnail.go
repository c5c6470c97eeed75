package entity

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Thumbnail is a derived image tied to one Image and one catalog size.
// Thumbnails are always persisted, so URL is never empty.
type Thumbnail struct {
	ID        uuid.UUID
	Name      string
	URL       string
	ImageID   uuid.UUID
	SizeID    uuid.UUID
	Height    int
	CreatedAt time.Time
}

func NewThumbnail(img *Image, size ThumbnailSize, url string) *Thumbnail {
	return &Thumbnail{
		ID:        uuid.New(),
		Name:      ThumbnailName(img.Name, size.Height),
		URL:       url,
		ImageID:   img.ID,
		SizeID:    size.ID,
		Height:    size.Height,
		CreatedAt: time.Now().UTC(),
	}
}

// ThumbnailName inserts "_<height>" before the image name's extension.
func ThumbnailName(imageName string, height int) string {
	ext := path.Ext(imageName)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(imageName, ext), height, ext)
}
