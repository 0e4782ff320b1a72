package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfessionModel mirrors the 'professions' table.
type ProfessionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string    `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfessionModel) TableName() string {
	return "professions"
}
