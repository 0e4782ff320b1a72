package postgres

import (
	"context"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const userEmailIndex = "idx_users_email"

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id), "failed to find user by id")
}

// FindByEmail retrieves a user by email from the primary, with the linked profile preloaded.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("PartnerSupplier").
		Preload("LoveDecoration").
		Where("email = ?", email)

	return repo.first(query, "failed to find user by email")
}

// FindByPartnerSupplierID retrieves the account linked to a partner supplier.
func (repo *userRepository) FindByPartnerSupplierID(ctx context.Context, partnerSupplierID uuid.UUID) (*entity.User, error) {
	query := repo.db.WithContext(ctx).Where("partner_supplier_id = ?", partnerSupplierID)

	return repo.first(query, "failed to find user by partner supplier")
}

func (repo *userRepository) first(query *gorm.DB, msg string) (*entity.User, error) {
	var userM model.UserModel
	if err := query.First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toUserDomain(&userM), nil
}

// ExistsByEmail checks the primary for an account with this exact email.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check user email")
	}

	return count > 0, nil
}

// Create persists a new user. Associations are never written through this call.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(userM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err) && pgConstraintName(err) != "" && pgConstraintName(err) != userEmailIndex:
			// The only other unique indexes are the profile links.
			return domainerrors.ErrInvalidProfileLink.WrapMessage("profile already has an account")
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		case isCheckConstraintViolation(err):
			return domainerrors.ErrInvalidProfileLink.WrapMessage("account linked to more than one profile")
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrInvalidProfileLink.WrapMessage("linked profile does not exist")
		case isNotNullConstraintViolation(err):
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                data.ID,
		Name:              data.Name,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		Role:              entity.Role(data.Role),
		PartnerSupplierID: data.PartnerSupplierID,
		LoveDecorationID:  data.LoveDecorationID,
		PartnerSupplier:   toPartnerSupplierDomain(data.PartnerSupplier),
		LoveDecoration:    toLoveDecorationDomain(data.LoveDecoration),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:                data.ID,
		Name:              data.Name,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		Role:              data.Role.String(),
		PartnerSupplierID: data.PartnerSupplierID,
		LoveDecorationID:  data.LoveDecorationID,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
