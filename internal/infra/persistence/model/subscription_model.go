package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions' table.
// partner_supplier_id is the upsert conflict target.
type SubscriptionModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PartnerSupplierID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	StripeCustomerID   string    `gorm:"type:varchar(255);not null"`
	SubscriptionID     string    `gorm:"type:varchar(255);not null"`
	SubscriptionStatus string    `gorm:"type:varchar(50);not null"`
	PlanType           string    `gorm:"type:varchar(20);not null"`
	CurrentPeriodEnd   time.Time `gorm:"not null"`
	CancelAtPeriodEnd  bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
