// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"eventhub/internal/domain/entity"
)

// AddressInput is a complete postal address. Every field but Complement is required,
// so an update always replaces the whole address.
type AddressInput struct {
	State      string `json:"state" validate:"required,max=50"`
	City       string `json:"city" validate:"required,max=120"`
	District   string `json:"district" validate:"required,max=120"`
	Street     string `json:"street" validate:"required,max=255"`
	Complement string `json:"complement" validate:"max=255"`
	Number     string `json:"number" validate:"required,max=20"`
	ZipCode    string `json:"zipCode" validate:"required,max=20"`
}

// ToEntity builds a new, unsaved address.
func (in *AddressInput) ToEntity() *entity.Address {
	return &entity.Address{
		State:      in.State,
		City:       in.City,
		District:   in.District,
		Street:     in.Street,
		Complement: in.Complement,
		Number:     in.Number,
		ZipCode:    in.ZipCode,
	}
}

// CreateUserInput is the login identity created together with a profile.
type CreateUserInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func setIfPresent(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
