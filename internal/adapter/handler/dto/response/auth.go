package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/blacha370/Image-Service/internal/domain/entity"
	"github.com/blacha370/Image-Service/internal/usecase/auth"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

func UserFromEntity(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func LoginToResponse(token *auth.AccessToken, user *entity.User) LoginResponse {
	return LoginResponse{
		AccessToken: token.Token,
		ExpiresAt:   token.ExpiresAt,
		User:        UserFromEntity(user),
	}
}
