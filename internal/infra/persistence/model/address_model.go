package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// Rows are owned by a profile through the profile's address_id column.
type AddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	State      string    `gorm:"type:varchar(50);not null"`
	City       string    `gorm:"type:varchar(120);not null"`
	District   string    `gorm:"type:varchar(120);not null"`
	Street     string    `gorm:"type:varchar(255);not null"`
	Complement string    `gorm:"type:varchar(255);not null;default:''"`
	Number     string    `gorm:"type:varchar(20);not null"`
	ZipCode    string    `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
