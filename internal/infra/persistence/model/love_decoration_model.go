package model

import (
	"time"

	"github.com/google/uuid"
)

// LoveDecorationModel mirrors the 'love_decorations' table.
type LoveDecorationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Contact   string    `gorm:"type:varchar(50);not null"`
	Instagram string    `gorm:"type:varchar(100);not null"`
	TikTok    string    `gorm:"column:tiktok;type:varchar(100);not null;default:''"`
	AddressID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Address *AddressModel `gorm:"foreignKey:AddressID"`
}

// TableName explicitly sets the table name for GORM.
func (LoveDecorationModel) TableName() string {
	return "love_decorations"
}
