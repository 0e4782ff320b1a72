package usecase

import (
	"context"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLoveDecorationInput is the vendor profile part of a registration.
type CreateLoveDecorationInput struct {
	Name      string       `json:"name" validate:"required,max=150"`
	Contact   string       `json:"contact" validate:"required,max=50"`
	Instagram string       `json:"instagram" validate:"required,max=100"`
	TikTok    string       `json:"tiktok" validate:"max=100"`
	Address   AddressInput `json:"address"`
}

// ToEntity builds the unsaved profile with its address. An absent TikTok handle is stored as "".
func (in *CreateLoveDecorationInput) ToEntity() *entity.LoveDecoration {
	return &entity.LoveDecoration{
		Name:      in.Name,
		Contact:   in.Contact,
		Instagram: in.Instagram,
		TikTok:    in.TikTok,
		Address:   in.Address.ToEntity(),
	}
}

// UpdateLoveDecorationInput is a partial update. Nil fields are left untouched;
// a present Address replaces all address fields.
type UpdateLoveDecorationInput struct {
	Name      *string       `json:"name" validate:"omitempty,min=1,max=150"`
	Contact   *string       `json:"contact" validate:"omitempty,min=1,max=50"`
	Instagram *string       `json:"instagram" validate:"omitempty,min=1,max=100"`
	TikTok    *string       `json:"tiktok" validate:"omitempty,max=100"`
	Address   *AddressInput `json:"address" validate:"omitempty"`
}

// ApplyTo copies the present scalar fields onto profile.
func (in *UpdateLoveDecorationInput) ApplyTo(profile *entity.LoveDecoration) {
	setIfPresent(&profile.Name, in.Name)
	setIfPresent(&profile.Contact, in.Contact)
	setIfPresent(&profile.Instagram, in.Instagram)
	setIfPresent(&profile.TikTok, in.TikTok)
}

// LoveDecorationRegistration is the result of a composite registration.
type LoveDecorationRegistration struct {
	LoveDecoration *entity.LoveDecoration
	User           *entity.User
}

// LoveDecorationUsecase manages love decoration vendor profiles.
type LoveDecorationUsecase interface {
	// Create registers the profile, its address and the linked account atomically.
	Create(ctx context.Context, profile *CreateLoveDecorationInput, user *CreateUserInput) (*LoveDecorationRegistration, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateLoveDecorationInput) (*entity.LoveDecoration, error)
	FindAll(ctx context.Context) ([]*entity.LoveDecoration, error)
	FindOne(ctx context.Context, id uuid.UUID) (*entity.LoveDecoration, error)
}
