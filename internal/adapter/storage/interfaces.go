package storage

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

type BlobStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	GetURL(key string) string
	Delete(ctx context.Context, key string) error
}

// Thumbnailer resizes raw image bytes to a target height, preserving aspect
// ratio and re-encoding in the format implied by the asset name's extension.
type Thumbnailer interface {
	Resize(data []byte, assetName string, targetHeight int) ([]byte, error)
}
