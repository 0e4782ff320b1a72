package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. A CHECK constraint allows at most one
// of partner_supplier_id and love_decoration_id to be set.
type UserModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name              string     `gorm:"type:varchar(100);not null"`
	Email             string     `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	PasswordHash      string     `gorm:"type:varchar(255);not null"`
	Role              string     `gorm:"type:varchar(20);not null"`
	PartnerSupplierID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_users_partner_supplier_id"`
	LoveDecorationID  *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_users_love_decoration_id"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	PartnerSupplier *PartnerSupplierModel `gorm:"foreignKey:PartnerSupplierID"`
	LoveDecoration  *LoveDecorationModel  `gorm:"foreignKey:LoveDecorationID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
