package model

import (
	"time"

	"github.com/google/uuid"
)

// PartnerSupplierModel mirrors the 'partner_suppliers' table.
type PartnerSupplierModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	TradeName    string     `gorm:"type:varchar(150);not null"`
	CompanyName  string     `gorm:"type:varchar(150);not null"`
	Document     string     `gorm:"type:varchar(20);not null;uniqueIndex"`
	Contact      string     `gorm:"type:varchar(50);not null"`
	Instagram    string     `gorm:"type:varchar(100);not null;default:''"`
	ProfessionID *uuid.UUID `gorm:"type:uuid;index"`
	Status       string     `gorm:"type:varchar(20);not null;default:'PENDING'"`
	AddressID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Address    *AddressModel    `gorm:"foreignKey:AddressID"`
	Profession *ProfessionModel `gorm:"foreignKey:ProfessionID"`
}

// TableName explicitly sets the table name for GORM.
func (PartnerSupplierModel) TableName() string {
	return "partner_suppliers"
}
