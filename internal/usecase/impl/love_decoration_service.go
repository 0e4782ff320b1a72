package impl

import (
	"context"
	"log/slog"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type loveDecorationService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	repo      repository.LoveDecorationRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// LoveDecorationServiceParams holds dependencies for LoveDecorationService, injected by Fx.
type LoveDecorationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Repo      repository.LoveDecorationRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewLoveDecorationService is the constructor for loveDecorationService.
func NewLoveDecorationService(params LoveDecorationServiceParams) usecase.LoveDecorationUsecase {
	return &loveDecorationService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		repo:      params.Repo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *loveDecorationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create checks the email on the primary, then writes profile, address and
// account in one transaction. The unique email index settles races.
func (srv *loveDecorationService) Create(
	ctx context.Context,
	profileInput *usecase.CreateLoveDecorationInput,
	userInput *usecase.CreateUserInput,
) (*usecase.LoveDecorationRegistration, error) {
	exists, err := srv.userRepo.ExistsByEmail(ctx, userInput.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email")
	}
	if exists {
		return nil, domainerrors.ErrEmailAlreadyRegistered
	}

	passwordHash, err := hashPassword(srv.hasher, userInput.Password)
	if err != nil {
		return nil, err
	}

	profile := profileInput.ToEntity()
	var user *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewLoveDecorationRepository().Create(ctx, profile); err != nil {
			return err
		}

		linked, err := newLinkedUser(userInput, passwordHash, entity.ProfileLink{
			Kind: entity.ProfileKindLoveDecoration,
			ID:   profile.ID,
		})
		if err != nil {
			return err
		}
		if err := repoFactory.NewUserRepository().Create(ctx, linked); err != nil {
			return err
		}
		user = linked

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register love decoration")
	}

	srv.log(ctx).Info("Love decoration registered",
		slog.String("love_decoration_id", profile.ID.String()),
		slog.String("user_id", user.ID.String()),
	)

	return &usecase.LoveDecorationRegistration{LoveDecoration: profile, User: user}, nil
}

// Update applies a partial update. A present address replaces every address field.
func (srv *loveDecorationService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateLoveDecorationInput) (*entity.LoveDecoration, error) {
	var updated *entity.LoveDecoration

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewLoveDecorationRepository()

		profile, err := repo.FindByID(ctx, id)
		if err != nil {
			return translateNotFound(err, repository.ErrLoveDecorationNotFound, domainerrors.ErrLoveDecorationNotFound)
		}

		input.ApplyTo(profile)
		if err := repo.Update(ctx, profile); err != nil {
			return translateNotFound(err, repository.ErrLoveDecorationNotFound, domainerrors.ErrLoveDecorationNotFound)
		}

		if input.Address != nil {
			if err := replaceAddress(ctx, repoFactory.NewAddressRepository(), profile.Address, input.Address); err != nil {
				return err
			}
		}
		updated = profile

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update love decoration")
	}

	return updated, nil
}

func (srv *loveDecorationService) FindAll(ctx context.Context) ([]*entity.LoveDecoration, error) {
	profiles, err := srv.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list love decorations")
	}

	return profiles, nil
}

func (srv *loveDecorationService) FindOne(ctx context.Context, id uuid.UUID) (*entity.LoveDecoration, error) {
	profile, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrLoveDecorationNotFound, domainerrors.ErrLoveDecorationNotFound)
	}

	return profile, nil
}

// replaceAddress overwrites the stored address of a profile with input.
func replaceAddress(ctx context.Context, addressRepo repository.AddressRepository, current *entity.Address, input *usecase.AddressInput) error {
	if current == nil {
		return errors.Wrap(domainerrors.ErrInternalError, "profile has no address")
	}

	current.ReplaceWith(input.ToEntity())
	if err := addressRepo.UpdateAddress(ctx, current); err != nil {
		return translateNotFound(err, repository.ErrAddressNotFound, domainerrors.ErrNotFound)
	}

	return nil
}
