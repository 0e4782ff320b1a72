package repository

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository updates addresses in place. Addresses are created
// together with their owning profile and are never deleted on their own.
type AddressRepository interface {
	// UpdateAddress overwrites every addressable field of an existing address.
	UpdateAddress(ctx context.Context, address *entity.Address) error
}
