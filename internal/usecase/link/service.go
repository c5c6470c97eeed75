package link

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/blacha370/Image-Service/internal/adapter/repository"
	"github.com/blacha370/Image-Service/internal/adapter/storage"
	"github.com/blacha370/Image-Service/internal/domain"
	"github.com/blacha370/Image-Service/internal/domain/entity"
)

type Service struct {
	linkRepo  repository.LinkRepository
	imageRepo repository.ImageRepository
	subRepo   repository.SubscriptionRepository
	storage   storage.BlobStorage
}

func NewService(
	linkRepo repository.LinkRepository,
	imageRepo repository.ImageRepository,
	subRepo repository.SubscriptionRepository,
	blobStorage storage.BlobStorage,
) *Service {
	return &Service{
		linkRepo:  linkRepo,
		imageRepo: imageRepo,
		subRepo:   subRepo,
		storage:   blobStorage,
	}
}

type GenerateInput struct {
	AccountID uuid.UUID
	ImageName string
	Seconds   int
}

// Generate mints a time-bounded public alias for one of the account's images.
// The tier permission is read from the current subscription at call time,
// unlike original storage, which is captured once at image creation.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*entity.ExpiringLink, error) {
	sub, err := s.subRepo.GetByAccount(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	if !sub.Tier.AllowExpiringLink {
		return nil, domain.ErrLinkNotAllowed
	}

	img, err := s.imageRepo.GetByOwnerAndName(ctx, input.AccountID, input.ImageName)
	if err != nil {
		return nil, err
	}

	count, err := s.linkRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	link, err := entity.NewExpiringLink(img, input.Seconds, count)
	if err != nil {
		return nil, err
	}

	if err := s.linkRepo.Create(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}

type ResolvedImage struct {
	Image       *entity.Image
	ContentType string
	Body        io.ReadCloser
}

// Resolve looks the link up by name. Expired links are indistinguishable from
// absent ones; both come back as ErrLinkNotFound.
func (s *Service) Resolve(ctx context.Context, name string) (*ResolvedImage, error) {
	lnk, err := s.linkRepo.GetActiveByName(ctx, name, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	img, err := s.imageRepo.GetByID(ctx, lnk.ImageID)
	if err != nil {
		return nil, err
	}

	body, err := s.storage.Download(ctx, img.Name)
	if err != nil {
		return nil, err
	}

	return &ResolvedImage{
		Image:       img,
		ContentType: img.ContentType(),
		Body:        body,
	}, nil
}
