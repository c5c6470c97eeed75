package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/blacha370/Image-Service/internal/domain"
	"github.com/blacha370/Image-Service/internal/domain/entity"
	"github.com/blacha370/Image-Service/internal/infrastructure/auth"
	"github.com/blacha370/Image-Service/internal/mocks"
	authUC "github.com/blacha370/Image-Service/internal/usecase/auth"
)

func TestService_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		jwtSvc := auth.NewJWTService("test-secret", 15*time.Minute)
		passwordHasher := auth.NewPasswordHasher(4)
		svc := authUC.NewService(userRepo, jwtSvc, passwordHasher)

		ctx := context.Background()
		userRepo.EXPECT().ExistsByEmail(ctx, "test@example.com").Return(false, nil)
		userRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		user, err := svc.Register(ctx, authUC.RegisterInput{
			Email:    "test@example.com",
			Password: "password123",
			Name:     "Test User",
		})

		require.NoError(t, err)
		assert.Equal(t, "test@example.com", user.Email)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "password123", user.PasswordHash)
	})

	t.Run("email already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		svc := authUC.NewService(userRepo, nil, nil)

		ctx := context.Background()
		userRepo.EXPECT().ExistsByEmail(ctx, "existing@example.com").Return(true, nil)

		user, err := svc.Register(ctx, authUC.RegisterInput{
			Email:    "existing@example.com",
			Password: "password123",
			Name:     "Test User",
		})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestService_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		jwtSvc := auth.NewJWTService("test-secret", 15*time.Minute)
		passwordHasher := auth.NewPasswordHasher(4)
		svc := authUC.NewService(userRepo, jwtSvc, passwordHasher)

		hash, err := passwordHasher.Hash("password123")
		require.NoError(t, err)
		user := entity.NewUser("test@example.com", hash, "Test User")

		ctx := context.Background()
		userRepo.EXPECT().GetByEmail(ctx, "test@example.com").Return(user, nil)

		token, loggedIn, err := svc.Login(ctx, authUC.LoginInput{
			Email:    "test@example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, token.Token)
		assert.True(t, token.ExpiresAt.After(time.Now()))
		assert.Equal(t, user.ID, loggedIn.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		jwtSvc := auth.NewJWTService("test-secret", 15*time.Minute)
		passwordHasher := auth.NewPasswordHasher(4)
		svc := authUC.NewService(userRepo, jwtSvc, passwordHasher)

		hash, err := passwordHasher.Hash("password123")
		require.NoError(t, err)
		user := entity.NewUser("test@example.com", hash, "Test User")

		ctx := context.Background()
		userRepo.EXPECT().GetByEmail(ctx, "test@example.com").Return(user, nil)

		_, _, err = svc.Login(ctx, authUC.LoginInput{
			Email:    "test@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		svc := authUC.NewService(userRepo, nil, nil)

		ctx := context.Background()
		userRepo.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, domain.ErrUserNotFound)

		_, _, err := svc.Login(ctx, authUC.LoginInput{
			Email:    "nobody@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
