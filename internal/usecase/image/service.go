package image

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/blacha370/Image-Service/internal/adapter/repository"
	"github.com/blacha370/Image-Service/internal/domain/entity"
)

type Service struct {
	imageRepo repository.ImageRepository
	thumbRepo repository.ThumbnailRepository
}

func NewService(imageRepo repository.ImageRepository, thumbRepo repository.ThumbnailRepository) *Service {
	return &Service{
		imageRepo: imageRepo,
		thumbRepo: thumbRepo,
	}
}

type Detail struct {
	Image      entity.Image
	Thumbnails []entity.Thumbnail
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]entity.Image, error) {
	images, err := s.imageRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}
	return images, nil
}

func (s *Service) ListWithThumbnails(ctx context.Context, ownerID uuid.UUID) ([]Detail, error) {
	images, err := s.imageRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}

	details := make([]Detail, 0, len(images))
	for _, img := range images {
		thumbs, err := s.thumbRepo.ListByImage(ctx, img.ID)
		if err != nil {
			return nil, fmt.Errorf("loading thumbnails: %w", err)
		}
		details = append(details, Detail{Image: img, Thumbnails: thumbs})
	}

	return details, nil
}

func (s *Service) GetByName(ctx context.Context, ownerID uuid.UUID, name string) (*Detail, error) {
	img, err := s.imageRepo.GetByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		return nil, err
	}

	thumbs, err := s.thumbRepo.ListByImage(ctx, img.ID)
	if err != nil {
		return nil, fmt.Errorf("loading thumbnails: %w", err)
	}

	return &Detail{Image: *img, Thumbnails: thumbs}, nil
}
