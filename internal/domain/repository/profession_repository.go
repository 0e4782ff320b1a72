package repository

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"

	"github.com/google/uuid"
)

// ErrProfessionNotFound is returned when a profession is not found.
var ErrProfessionNotFound = errors.New("profession not found")

// ProfessionRepository defines persistence for the profession catalogue.
type ProfessionRepository interface {
	Create(ctx context.Context, profession *entity.Profession) error
	Update(ctx context.Context, profession *entity.Profession) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profession, error)
	FindAll(ctx context.Context) ([]*entity.Profession, error)
}
