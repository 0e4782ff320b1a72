// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when a subscription is not found.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository defines the interface for subscription-related database operations.
type SubscriptionRepository interface {
	// Upsert inserts the subscription of a partner or, when one already exists,
	// overwrites every mutable field. Keyed by PartnerSupplierID.
	Upsert(ctx context.Context, subscription *entity.Subscription) error

	// FindByPartnerSupplierID retrieves the subscription of a partner from the primary database.
	FindByPartnerSupplierID(ctx context.Context, partnerSupplierID uuid.UUID) (*entity.Subscription, error)
}
