// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// addressColumns are rewritten as a whole on every address update.
var addressColumns = []string{"state", "city", "district", "street", "complement", "number", "zip_code", "updated_at"}

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// UpdateAddress overwrites every addressable field, empty complement included.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)
	addressM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{ID: address.ID}).
		Select(addressColumns).
		Updates(addressM)
	if err := result.Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:         data.ID,
		State:      data.State,
		City:       data.City,
		District:   data.District,
		Street:     data.Street,
		Complement: data.Complement,
		Number:     data.Number,
		ZipCode:    data.ZipCode,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:         data.ID,
		State:      data.State,
		City:       data.City,
		District:   data.District,
		Street:     data.Street,
		Complement: data.Complement,
		Number:     data.Number,
		ZipCode:    data.ZipCode,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// syncAddress copies generated values back after a nested create.
func syncAddress(dst *entity.Address, src *model.AddressModel) {
	if dst == nil || src == nil {
		return
	}
	dst.ID = src.ID
	dst.CreatedAt = src.CreatedAt
	dst.UpdatedAt = src.UpdatedAt
}
