package repository

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"

	"github.com/google/uuid"
)

// ErrPartnerSupplierNotFound is returned when a partner supplier is not found.
var ErrPartnerSupplierNotFound = errors.New("partner supplier not found")

// PartnerSupplierRepository defines persistence for partner supplier profiles.
type PartnerSupplierRepository interface {
	// Create persists the profile and its embedded address.
	Create(ctx context.Context, partner *entity.PartnerSupplier) error

	// Update saves the scalar fields of an existing profile. The address is untouched.
	Update(ctx context.Context, partner *entity.PartnerSupplier) error

	// UpdateStatus changes the moderation status only.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PartnerStatus) error

	// FindByID retrieves a profile with its address.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PartnerSupplier, error)

	// FindAll retrieves every profile with its address.
	FindAll(ctx context.Context) ([]*entity.PartnerSupplier, error)
}
