package usecase

import (
	"context"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProfessionInput defines a catalogue entry.
type CreateProfessionInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// UpdateProfessionInput is a partial update of a catalogue entry.
type UpdateProfessionInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// ProfessionUsecase manages the profession catalogue.
type ProfessionUsecase interface {
	Create(ctx context.Context, input *CreateProfessionInput) (*entity.Profession, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateProfessionInput) (*entity.Profession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context) ([]*entity.Profession, error)
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Profession, error)
}
