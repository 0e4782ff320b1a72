package repository

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"

	"github.com/google/uuid"
)

// ErrLoveDecorationNotFound is returned when a love decoration profile is not found.
var ErrLoveDecorationNotFound = errors.New("love decoration not found")

// LoveDecorationRepository defines persistence for love decoration vendor profiles.
type LoveDecorationRepository interface {
	// Create persists the profile and its embedded address in one statement group.
	// Generated ids and timestamps are written back to the entity.
	Create(ctx context.Context, profile *entity.LoveDecoration) error

	// Update saves the scalar fields of an existing profile. The address is untouched.
	Update(ctx context.Context, profile *entity.LoveDecoration) error

	// FindByID retrieves a profile with its address.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LoveDecoration, error)

	// FindAll retrieves every profile with its address.
	FindAll(ctx context.Context) ([]*entity.LoveDecoration, error)
}
