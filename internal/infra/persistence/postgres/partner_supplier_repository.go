package postgres

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var partnerSupplierColumns = []string{
	"trade_name", "company_name", "document", "contact", "instagram", "profession_id", "updated_at",
}

type partnerSupplierRepository struct {
	db *gorm.DB
}

// NewPartnerSupplierRepository is the constructor for partnerSupplierRepository.
func NewPartnerSupplierRepository(db *gorm.DB) repository.PartnerSupplierRepository {
	return &partnerSupplierRepository{db: db}
}

// Create inserts the address and then the profile referencing it.
func (repo *partnerSupplierRepository) Create(ctx context.Context, partner *entity.PartnerSupplier) error {
	partnerM := fromPartnerSupplierDomain(partner)

	if err := repo.db.WithContext(ctx).Omit("Profession").Create(partnerM).Error; err != nil {
		return partnerWriteError(err, "failed to create partner supplier")
	}

	partner.ID = partnerM.ID
	partner.Status = entity.PartnerStatus(partnerM.Status)
	partner.CreatedAt = partnerM.CreatedAt
	partner.UpdatedAt = partnerM.UpdatedAt
	syncAddress(partner.Address, partnerM.Address)

	return nil
}

// Update saves the scalar columns only. Status changes go through UpdateStatus.
func (repo *partnerSupplierRepository) Update(ctx context.Context, partner *entity.PartnerSupplier) error {
	partnerM := fromPartnerSupplierDomain(partner)
	partnerM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.PartnerSupplierModel{ID: partner.ID}).
		Omit(clause.Associations).
		Select(partnerSupplierColumns).
		Updates(partnerM)
	if err := result.Error; err != nil {
		return partnerWriteError(err, "failed to update partner supplier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPartnerSupplierNotFound
	}

	partner.UpdatedAt = partnerM.UpdatedAt

	return nil
}

// UpdateStatus changes the moderation status.
func (repo *partnerSupplierRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PartnerStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PartnerSupplierModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status.String(),
			"updated_at": time.Now(),
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update partner supplier status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPartnerSupplierNotFound
	}

	return nil
}

// FindByID retrieves a profile with its address.
func (repo *partnerSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PartnerSupplier, error) {
	var partnerM model.PartnerSupplierModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Where("id = ?", id).
		First(&partnerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner supplier by id")
	}

	return toPartnerSupplierDomain(&partnerM), nil
}

// FindAll retrieves every profile with its address, oldest first.
func (repo *partnerSupplierRepository) FindAll(ctx context.Context) ([]*entity.PartnerSupplier, error) {
	var partnerModels []*model.PartnerSupplierModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Order("created_at ASC").
		Find(&partnerModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list partner suppliers")
	}

	partners := make([]*entity.PartnerSupplier, 0, len(partnerModels))
	for _, partnerM := range partnerModels {
		partners = append(partners, toPartnerSupplierDomain(partnerM))
	}

	return partners, nil
}

func partnerWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrPartnerDocumentConflict.WrapMessage("document already exists")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrProfessionNotFound.WrapMessage("unknown profession")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("missing required partner information")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func toPartnerSupplierDomain(data *model.PartnerSupplierModel) *entity.PartnerSupplier {
	if data == nil {
		return nil
	}

	return &entity.PartnerSupplier{
		ID:           data.ID,
		TradeName:    data.TradeName,
		CompanyName:  data.CompanyName,
		Document:     data.Document,
		Contact:      data.Contact,
		Instagram:    data.Instagram,
		ProfessionID: data.ProfessionID,
		Status:       entity.PartnerStatus(data.Status),
		Address:      toAddressDomain(data.Address),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromPartnerSupplierDomain(data *entity.PartnerSupplier) *model.PartnerSupplierModel {
	partnerM := &model.PartnerSupplierModel{
		ID:           data.ID,
		TradeName:    data.TradeName,
		CompanyName:  data.CompanyName,
		Document:     data.Document,
		Contact:      data.Contact,
		Instagram:    data.Instagram,
		ProfessionID: data.ProfessionID,
		Status:       data.Status.String(),
		Address:      fromAddressDomain(data.Address),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.Address != nil {
		partnerM.AddressID = data.Address.ID
	}

	return partnerM
}
