package usecase

import (
	"context"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePartnerSupplierInput is the partner profile part of a registration.
type CreatePartnerSupplierInput struct {
	TradeName    string       `json:"tradeName" validate:"required,max=150"`
	CompanyName  string       `json:"companyName" validate:"required,max=150"`
	Document     string       `json:"document" validate:"required,min=11,max=20"`
	Contact      string       `json:"contact" validate:"required,max=50"`
	Instagram    string       `json:"instagram" validate:"max=100"`
	ProfessionID *uuid.UUID   `json:"professionId" validate:"omitempty"`
	Address      AddressInput `json:"address"`
}

// ToEntity builds the unsaved profile. New partners start PENDING.
func (in *CreatePartnerSupplierInput) ToEntity() *entity.PartnerSupplier {
	return &entity.PartnerSupplier{
		TradeName:    in.TradeName,
		CompanyName:  in.CompanyName,
		Document:     in.Document,
		Contact:      in.Contact,
		Instagram:    in.Instagram,
		ProfessionID: in.ProfessionID,
		Status:       entity.PartnerStatusPending,
		Address:      in.Address.ToEntity(),
	}
}

// UpdatePartnerSupplierInput is a partial update. Nil fields are left untouched;
// a present Address replaces all address fields.
type UpdatePartnerSupplierInput struct {
	TradeName    *string       `json:"tradeName" validate:"omitempty,min=1,max=150"`
	CompanyName  *string       `json:"companyName" validate:"omitempty,min=1,max=150"`
	Document     *string       `json:"document" validate:"omitempty,min=11,max=20"`
	Contact      *string       `json:"contact" validate:"omitempty,min=1,max=50"`
	Instagram    *string       `json:"instagram" validate:"omitempty,max=100"`
	ProfessionID *uuid.UUID    `json:"professionId" validate:"omitempty"`
	Address      *AddressInput `json:"address" validate:"omitempty"`
}

// ApplyTo copies the present scalar fields onto partner.
func (in *UpdatePartnerSupplierInput) ApplyTo(partner *entity.PartnerSupplier) {
	setIfPresent(&partner.TradeName, in.TradeName)
	setIfPresent(&partner.CompanyName, in.CompanyName)
	setIfPresent(&partner.Document, in.Document)
	setIfPresent(&partner.Contact, in.Contact)
	setIfPresent(&partner.Instagram, in.Instagram)
	if in.ProfessionID != nil {
		id := *in.ProfessionID
		partner.ProfessionID = &id
	}
}

// PartnerSupplierRegistration is the result of a composite registration.
type PartnerSupplierRegistration struct {
	PartnerSupplier *entity.PartnerSupplier
	User            *entity.User
}

// PartnerSupplierUsecase manages partner supplier profiles and their moderation.
type PartnerSupplierUsecase interface {
	// Create registers the profile, its address and the linked account atomically,
	// then notifies the partner by mail.
	Create(ctx context.Context, profile *CreatePartnerSupplierInput, user *CreateUserInput) (*PartnerSupplierRegistration, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdatePartnerSupplierInput) (*entity.PartnerSupplier, error)
	// UpdateStatus moves the partner to status and mails the outcome of a real transition.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PartnerStatus) (*entity.PartnerSupplier, error)
	FindAll(ctx context.Context) ([]*entity.PartnerSupplier, error)
	FindOne(ctx context.Context, id uuid.UUID) (*entity.PartnerSupplier, error)
}
