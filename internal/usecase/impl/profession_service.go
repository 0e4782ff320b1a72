package impl

import (
	"context"
	"log/slog"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type professionService struct {
	repo   repository.ProfessionRepository
	logger *slog.Logger
}

// ProfessionServiceParams holds dependencies for ProfessionService, injected by Fx.
type ProfessionServiceParams struct {
	fx.In

	Repo   repository.ProfessionRepository
	Logger *slog.Logger
}

// NewProfessionService is the constructor for professionService.
func NewProfessionService(params ProfessionServiceParams) usecase.ProfessionUsecase {
	return &professionService{
		repo:   params.Repo,
		logger: params.Logger,
	}
}

func (srv *professionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *professionService) Create(ctx context.Context, input *usecase.CreateProfessionInput) (*entity.Profession, error) {
	profession := &entity.Profession{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := srv.repo.Create(ctx, profession); err != nil {
		return nil, errors.Wrap(err, "failed to create profession")
	}

	srv.log(ctx).Info("Profession created", slog.String("profession_id", profession.ID.String()))

	return profession, nil
}

func (srv *professionService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateProfessionInput) (*entity.Profession, error) {
	profession, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrProfessionNotFound, domainerrors.ErrProfessionNotFound)
	}

	if input.Name != nil {
		profession.Name = *input.Name
	}
	if input.Description != nil {
		profession.Description = *input.Description
	}

	if err := srv.repo.Update(ctx, profession); err != nil {
		return nil, translateNotFound(err, repository.ErrProfessionNotFound, domainerrors.ErrProfessionNotFound)
	}

	return profession, nil
}

func (srv *professionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.repo.Delete(ctx, id); err != nil {
		return translateNotFound(err, repository.ErrProfessionNotFound, domainerrors.ErrProfessionNotFound)
	}

	srv.log(ctx).Info("Profession deleted", slog.String("profession_id", id.String()))

	return nil
}

func (srv *professionService) FindAll(ctx context.Context) ([]*entity.Profession, error) {
	professions, err := srv.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list professions")
	}

	return professions, nil
}

func (srv *professionService) FindOne(ctx context.Context, id uuid.UUID) (*entity.Profession, error) {
	profession, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrProfessionNotFound, domainerrors.ErrProfessionNotFound)
	}

	return profession, nil
}
