// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by exact email, with the linked profile preloaded.
	// Reads go to the primary database.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByPartnerSupplierID retrieves the account linked to a partner supplier.
	FindByPartnerSupplierID(ctx context.Context, partnerSupplierID uuid.UUID) (*entity.User, error)

	// ExistsByEmail reports whether an account with this exact email exists.
	// Reads go to the primary database so a just-committed account is visible.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user entity. A unique email violation
	// surfaces as domain errors.ErrEmailAlreadyRegistered.
	Create(ctx context.Context, user *entity.User) error
}
