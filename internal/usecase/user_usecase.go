package usecase

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the access token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
}

// UserUsecase manages login identities. Every account is linked to exactly one profile.
type UserUsecase interface {
	// CheckIfEmailExists reads the primary database.
	CheckIfEmailExists(ctx context.Context, email string) (bool, error)

	// CreateUserWithRelation creates an account linked to the profile named by link.
	CreateUserWithRelation(ctx context.Context, input *CreateUserInput, link entity.ProfileLink) (*entity.User, error)

	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
