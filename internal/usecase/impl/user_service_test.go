package impl

import (
	"context"
	"testing"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	mockRepo "eventhub/internal/mocks/repository"
	mockSvc "eventhub/internal/mocks/service"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_CheckIfEmailExists(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ExistsByEmail(ctx, "ana@example.com").Return(true, nil)

	exists, err := fx.service.CheckIfEmailExists(ctx, "ana@example.com")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserService_CreateUserWithRelation_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	partnerID := uuid.New()
	input := newUserInput("ana@example.com")

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.CreateUserWithRelation(ctx, input, entity.ProfileLink{
		Kind: entity.ProfileKindPartnerSupplier,
		ID:   partnerID,
	})

	require.NoError(t, err)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, entity.RolePartner, user.Role)
	require.NotNil(t, user.PartnerSupplierID)
	assert.Equal(t, partnerID, *user.PartnerSupplierID)
	assert.Nil(t, user.LoveDecorationID)
}

func TestUserService_CreateUserWithRelation_InvalidLink(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.CreateUserWithRelation(context.Background(), newUserInput("ana@example.com"), entity.ProfileLink{})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidProfileLink)
}

func TestUserService_CreateUserWithRelation_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := newUserInput("ana@example.com")

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrEmailAlreadyRegistered.WrapMessage("duplicate key"))

	_, err := fx.service.CreateUserWithRelation(ctx, input, entity.ProfileLink{
		Kind: entity.ProfileKindLoveDecoration,
		ID:   uuid.New(),
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "hashed", Role: entity.RoleDecorator}
	expiresAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("s3cret-pass", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(user.ID, []string{"DECORATOR"}).Return("token", expiresAt, nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "token", out.AccessToken)
	assert.Equal(t, expiresAt, out.ExpiresAt)
	assert.Same(t, user, out.User)
}

func TestUserService_Login_Failures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx userServiceFixtures)
	}{
		{
			name: "unknown email",
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ana@example.com").Return(nil, repository.ErrUserNotFound)
			},
		},
		{
			name: "wrong password",
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ana@example.com").
					Return(&entity.User{ID: uuid.New(), PasswordHash: "hashed"}, nil)
				fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			tt.setup(fx)

			out, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ana@example.com", Password: "wrong"})

			assert.Nil(t, out)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		})
	}
}

func TestUserService_Login_RepositoryError(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(nil, errors.New("connection reset"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "x"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUser(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
