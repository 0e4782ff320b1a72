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

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) CheckIfEmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := srv.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, errors.Wrap(err, "failed to check email")
	}

	return exists, nil
}

// CreateUserWithRelation creates a standalone account for an existing profile.
// Registrations that create the profile too go through the profile usecases.
func (srv *userService) CreateUserWithRelation(ctx context.Context, input *usecase.CreateUserInput, link entity.ProfileLink) (*entity.User, error) {
	if !link.IsValid() {
		return nil, domainerrors.ErrInvalidProfileLink
	}

	passwordHash, err := hashPassword(srv.hasher, input.Password)
	if err != nil {
		return nil, err
	}

	user, err := newLinkedUser(input, passwordHash, link)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created",
		slog.String("user_id", user.ID.String()),
		slog.String("profile_kind", link.Kind.String()),
	)

	return user, nil
}

func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.String("user_id", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(user.ID, entity.Roles{user.Role}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound)
	}

	return user, nil
}
