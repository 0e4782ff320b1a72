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
)

type professionRepository struct {
	db *gorm.DB
}

// NewProfessionRepository is the constructor for professionRepository.
func NewProfessionRepository(db *gorm.DB) repository.ProfessionRepository {
	return &professionRepository{db: db}
}

func (repo *professionRepository) Create(ctx context.Context, profession *entity.Profession) error {
	professionM := fromProfessionDomain(profession)

	if err := repo.db.WithContext(ctx).Create(professionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfessionAlreadyExists.WrapMessage("profession name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profession")
	}

	profession.ID = professionM.ID
	profession.CreatedAt = professionM.CreatedAt
	profession.UpdatedAt = professionM.UpdatedAt

	return nil
}

func (repo *professionRepository) Update(ctx context.Context, profession *entity.Profession) error {
	professionM := fromProfessionDomain(profession)
	professionM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ProfessionModel{ID: profession.ID}).
		Select("name", "description", "updated_at").
		Updates(professionM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfessionAlreadyExists.WrapMessage("profession name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update profession")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfessionNotFound
	}

	profession.UpdatedAt = professionM.UpdatedAt

	return nil
}

// Delete removes a profession. Professions still referenced by partners are kept.
func (repo *professionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProfessionModel{})
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("profession is used by partner suppliers")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete profession")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfessionNotFound
	}

	return nil
}

func (repo *professionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profession, error) {
	var professionM model.ProfessionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&professionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find profession by id")
	}

	return toProfessionDomain(&professionM), nil
}

// FindAll lists the catalogue alphabetically.
func (repo *professionRepository) FindAll(ctx context.Context) ([]*entity.Profession, error) {
	var professionModels []*model.ProfessionModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&professionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list professions")
	}

	professions := make([]*entity.Profession, 0, len(professionModels))
	for _, professionM := range professionModels {
		professions = append(professions, toProfessionDomain(professionM))
	}

	return professions, nil
}

func toProfessionDomain(data *model.ProfessionModel) *entity.Profession {
	return &entity.Profession{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProfessionDomain(data *entity.Profession) *model.ProfessionModel {
	return &model.ProfessionModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
