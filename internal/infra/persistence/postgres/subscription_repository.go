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

// subscriptionMutableColumns are overwritten when a partner already has a row.
var subscriptionMutableColumns = []string{
	"subscription_id",
	"stripe_customer_id",
	"subscription_status",
	"plan_type",
	"current_period_end",
	"cancel_at_period_end",
	"updated_at",
}

// subscriptionRepository implements the domain.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Upsert issues INSERT ... ON CONFLICT (partner_supplier_id) DO UPDATE and
// reloads the stored row so id and created_at reflect the existing record.
func (repo *subscriptionRepository) Upsert(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "partner_supplier_id"}},
			DoUpdates: clause.AssignmentColumns(subscriptionMutableColumns),
		}).
		Create(subscriptionM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPartnerSupplierNotFound.WrapMessage("subscription owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert subscription")
	}

	stored, err := repo.FindByPartnerSupplierID(ctx, subscription.PartnerSupplierID)
	if err != nil {
		return err
	}
	*subscription = *stored

	return nil
}

// FindByPartnerSupplierID reads from the primary.
func (repo *subscriptionRepository) FindByPartnerSupplierID(ctx context.Context, partnerSupplierID uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("partner_supplier_id = ?", partnerSupplierID).
		First(&subscriptionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by partner supplier")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	return &entity.Subscription{
		ID:                 data.ID,
		PartnerSupplierID:  data.PartnerSupplierID,
		StripeCustomerID:   data.StripeCustomerID,
		SubscriptionID:     data.SubscriptionID,
		SubscriptionStatus: data.SubscriptionStatus,
		PlanType:           entity.PlanTier(data.PlanType),
		CurrentPeriodEnd:   data.CurrentPeriodEnd.UTC(),
		CancelAtPeriodEnd:  data.CancelAtPeriodEnd,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	return &model.SubscriptionModel{
		ID:                 data.ID,
		PartnerSupplierID:  data.PartnerSupplierID,
		StripeCustomerID:   data.StripeCustomerID,
		SubscriptionID:     data.SubscriptionID,
		SubscriptionStatus: data.SubscriptionStatus,
		PlanType:           data.PlanType.String(),
		CurrentPeriodEnd:   data.CurrentPeriodEnd,
		CancelAtPeriodEnd:  data.CancelAtPeriodEnd,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
