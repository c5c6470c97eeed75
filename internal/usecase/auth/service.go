package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/blacha370/Image-Service/internal/adapter/repository"
	"github.com/blacha370/Image-Service/internal/domain"
	"github.com/blacha370/Image-Service/internal/domain/entity"
	infraauth "github.com/blacha370/Image-Service/internal/infrastructure/auth"
)

type Service struct {
	userRepo repository.UserRepository
	jwtSvc   *infraauth.JWTService
	hasher   *infraauth.PasswordHasher
}

func NewService(
	userRepo repository.UserRepository,
	jwtSvc *infraauth.JWTService,
	hasher *infraauth.PasswordHasher,
) *Service {
	return &Service{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		hasher:   hasher,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := entity.NewUser(input.Email, hash, input.Name)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

type LoginInput struct {
	Email    string
	Password string
}

type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

func (s *Service) Login(ctx context.Context, input LoginInput) (*AccessToken, *entity.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtSvc.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("generating token: %w", err)
	}

	return &AccessToken{Token: token, ExpiresAt: expiresAt}, user, nil
}
