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

var loveDecorationColumns = []string{"name", "contact", "instagram", "tiktok", "updated_at"}

type loveDecorationRepository struct {
	db *gorm.DB
}

// NewLoveDecorationRepository is the constructor for loveDecorationRepository.
func NewLoveDecorationRepository(db *gorm.DB) repository.LoveDecorationRepository {
	return &loveDecorationRepository{db: db}
}

// Create inserts the address and then the profile referencing it.
func (repo *loveDecorationRepository) Create(ctx context.Context, profile *entity.LoveDecoration) error {
	profileM := fromLoveDecorationDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create love decoration")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt
	syncAddress(profile.Address, profileM.Address)

	return nil
}

// Update saves the scalar columns only.
func (repo *loveDecorationRepository) Update(ctx context.Context, profile *entity.LoveDecoration) error {
	profileM := fromLoveDecorationDomain(profile)
	profileM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.LoveDecorationModel{ID: profile.ID}).
		Omit(clause.Associations).
		Select(loveDecorationColumns).
		Updates(profileM)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update love decoration")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLoveDecorationNotFound
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByID retrieves a profile with its address.
func (repo *loveDecorationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LoveDecoration, error) {
	var profileM model.LoveDecorationModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Where("id = ?", id).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoveDecorationNotFound
		}

		return nil, errors.Wrap(err, "failed to find love decoration by id")
	}

	return toLoveDecorationDomain(&profileM), nil
}

// FindAll retrieves every profile with its address, oldest first.
func (repo *loveDecorationRepository) FindAll(ctx context.Context) ([]*entity.LoveDecoration, error) {
	var profileModels []*model.LoveDecorationModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Order("created_at ASC").
		Find(&profileModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list love decorations")
	}

	profiles := make([]*entity.LoveDecoration, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toLoveDecorationDomain(profileM))
	}

	return profiles, nil
}

func toLoveDecorationDomain(data *model.LoveDecorationModel) *entity.LoveDecoration {
	if data == nil {
		return nil
	}

	return &entity.LoveDecoration{
		ID:        data.ID,
		Name:      data.Name,
		Contact:   data.Contact,
		Instagram: data.Instagram,
		TikTok:    data.TikTok,
		Address:   toAddressDomain(data.Address),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromLoveDecorationDomain(data *entity.LoveDecoration) *model.LoveDecorationModel {
	profileM := &model.LoveDecorationModel{
		ID:        data.ID,
		Name:      data.Name,
		Contact:   data.Contact,
		Instagram: data.Instagram,
		TikTok:    data.TikTok,
		Address:   fromAddressDomain(data.Address),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Address != nil {
		profileM.AddressID = data.Address.ID
	}

	return profileM
}
