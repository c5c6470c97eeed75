package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/blacha370/Image-Service/internal/adapter/repository"
	"github.com/blacha370/Image-Service/internal/adapter/storage"
	"github.com/blacha370/Image-Service/internal/domain"
	"github.com/blacha370/Image-Service/internal/domain/entity"
)

type Service struct {
	imageRepo   repository.ImageRepository
	thumbRepo   repository.ThumbnailRepository
	subRepo     repository.SubscriptionRepository
	storage     storage.BlobStorage
	thumbnailer storage.Thumbnailer
}

func NewService(
	imageRepo repository.ImageRepository,
	thumbRepo repository.ThumbnailRepository,
	subRepo repository.SubscriptionRepository,
	blobStorage storage.BlobStorage,
	thumbnailer storage.Thumbnailer,
) *Service {
	return &Service{
		imageRepo:   imageRepo,
		thumbRepo:   thumbRepo,
		subRepo:     subRepo,
		storage:     blobStorage,
		thumbnailer: thumbnailer,
	}
}

type UploadInput struct {
	AccountID uuid.UUID
	File      io.Reader
	Filename  string
}

type UploadResult struct {
	Image      *entity.Image
	Thumbnails []entity.Thumbnail
}

// Upload creates the image record and fans out one thumbnail per size in the
// owner's tier. The whole sequence is at-least-once with no compensation:
// a failure partway through leaves already-created assets in place.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	sub, err := s.subRepo.GetByAccount(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	count, err := s.imageRepo.CountByOwner(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(path.Ext(input.Filename))
	img, err := entity.NewImage(input.AccountID, ext, count)
	if err != nil {
		return nil, err
	}

	// Original-storage permission is captured from the tier current at this
	// instant and never revisited, unlike the per-size checks below.
	if sub.Tier.AllowOriginal {
		if err := s.storage.Upload(ctx, img.Name, bytes.NewReader(data), img.ContentType(), int64(len(data))); err != nil {
			return nil, fmt.Errorf("storing original: %w", err)
		}
		img.URL = s.storage.GetURL(img.Name)
	}

	if err := s.imageRepo.Create(ctx, img); err != nil {
		return nil, fmt.Errorf("creating image record: %w", err)
	}

	thumbnails := make([]entity.Thumbnail, 0, len(sub.Tier.Sizes))
	for _, size := range sub.Tier.Sizes {
		thumb, err := s.CreateThumbnail(ctx, img, size, data)
		if err != nil {
			// The size set is re-read inside CreateThumbnail, so a tier change
			// mid-request surfaces here; a size that is no longer permitted (or
			// already derived) only drops that thumbnail.
			if errors.Is(err, domain.ErrSizeNotAllowed) || errors.Is(err, domain.ErrThumbnailExists) {
				continue
			}
			return nil, err
		}
		thumbnails = append(thumbnails, *thumb)
	}

	return &UploadResult{Image: img, Thumbnails: thumbnails}, nil
}

// CreateThumbnail derives one thumbnail, re-checking the owner's current tier
// at this instant. The (image, size) pair and the derived name are both
// guarded by unique indexes; the existence check here short-circuits before
// any resize work happens.
func (s *Service) CreateThumbnail(ctx context.Context, img *entity.Image, size entity.ThumbnailSize, data []byte) (*entity.Thumbnail, error) {
	sub, err := s.subRepo.GetByAccount(ctx, img.OwnerID)
	if err != nil {
		return nil, err
	}

	if !sub.Tier.Allows(size.Height) {
		return nil, domain.ErrSizeNotAllowed
	}

	exists, err := s.thumbRepo.ExistsByImageAndSize(ctx, img.ID, size.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrThumbnailExists
	}

	name := entity.ThumbnailName(img.Name, size.Height)
	resized, err := s.thumbnailer.Resize(data, name, size.Height)
	if err != nil {
		return nil, err
	}

	if err := s.storage.Upload(ctx, name, bytes.NewReader(resized), img.ContentType(), int64(len(resized))); err != nil {
		return nil, fmt.Errorf("storing thumbnail: %w", err)
	}

	thumb := entity.NewThumbnail(img, size, s.storage.GetURL(name))
	if err := s.thumbRepo.Create(ctx, thumb); err != nil {
		return nil, err
	}

	return thumb, nil
}
