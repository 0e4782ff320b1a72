package impl

import (
	"context"
	"testing"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	mockRepo "eventhub/internal/mocks/repository"
	mockSvc "eventhub/internal/mocks/service"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type loveDecorationServiceFixtures struct {
	service   usecase.LoveDecorationUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	repo      *mockRepo.MockLoveDecorationRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestLoveDecorationService(t *testing.T) loveDecorationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	repo := mockRepo.NewMockLoveDecorationRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewLoveDecorationService(LoveDecorationServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Repo:      repo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return loveDecorationServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		repo:      repo,
		hasher:    hasher,
	}
}

func newLoveDecorationInput() *usecase.CreateLoveDecorationInput {
	return &usecase.CreateLoveDecorationInput{
		Name:      "Amor em Cena",
		Contact:   "+55 11 99999-0000",
		Instagram: "@amoremcena",
		Address:   newAddressInput(),
	}
}

func TestLoveDecorationService_Create_Success(t *testing.T) {
	fx := createTestLoveDecorationService(t)
	ctx := context.Background()
	profileInput := newLoveDecorationInput()
	userInput := newUserInput("ana@example.com")
	profileID := uuid.New()

	fx.userRepo.EXPECT().ExistsByEmail(ctx, userInput.Email).Return(false, nil)
	fx.hasher.EXPECT().Hash(userInput.Password).Return("hashed", nil)

	var createdUser *entity.User
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProfileRepo := mockRepo.NewMockLoveDecorationRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewLoveDecorationRepository().Return(txProfileRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
			txProfileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.LoveDecoration")).
				Run(func(_ context.Context, profile *entity.LoveDecoration) {
					profile.ID = profileID
				}).
				Return(nil)
			txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(_ context.Context, user *entity.User) {
					user.ID = uuid.New()
					createdUser = user
				}).
				Return(nil)

			return fn(mockFactory)
		})

	reg, err := fx.service.Create(ctx, profileInput, userInput)

	require.NoError(t, err)
	assert.Equal(t, profileID, reg.LoveDecoration.ID)
	assert.Equal(t, profileInput.Address.ToEntity(), reg.LoveDecoration.Address)
	assert.Empty(t, reg.LoveDecoration.TikTok)
	require.NotNil(t, reg.User.LoveDecorationID)
	assert.Equal(t, profileID, *reg.User.LoveDecorationID)
	assert.Nil(t, reg.User.PartnerSupplierID)
	assert.Equal(t, entity.RoleDecorator, reg.User.Role)
	assert.Equal(t, "hashed", reg.User.PasswordHash)
	assert.Same(t, createdUser, reg.User)
}

func TestLoveDecorationService_Create_EmailTaken(t *testing.T) {
	fx := createTestLoveDecorationService(t)
	ctx := context.Background()
	userInput := newUserInput("ana@example.com")

	fx.userRepo.EXPECT().ExistsByEmail(ctx, userInput.Email).Return(true, nil)

	reg, err := fx.service.Create(ctx, newLoveDecorationInput(), userInput)

	assert.Nil(t, reg)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestLoveDecorationService_Create_RaceOnEmailRollsBack(t *testing.T) {
	fx := createTestLoveDecorationService(t)
	ctx := context.Background()
	userInput := newUserInput("ana@example.com")

	fx.userRepo.EXPECT().ExistsByEmail(ctx, userInput.Email).Return(false, nil)
	fx.hasher.EXPECT().Hash(userInput.Password).Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProfileRepo := mockRepo.NewMockLoveDecorationRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewLoveDecorationRepository().Return(txProfileRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
			txProfileRepo.EXPECT().Create(ctx, mock.Anything).
				Run(func(_ context.Context, profile *entity.LoveDecoration) { profile.ID = uuid.New() }).
				Return(nil)
			txUserRepo.EXPECT().Create(ctx, mock.Anything).
				Return(domainerrors.ErrEmailAlreadyRegistered.WrapMessage("idx_users_email"))

			return fn(mockFactory)
		})

	reg, err := fx.service.Create(ctx, newLoveDecorationInput(), userInput)

	assert.Nil(t, reg)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestLoveDecorationService_Update(t *testing.T) {
	newName := "Amor & Arte"
	fullAddress := usecase.AddressInput{
		State:    "RJ",
		City:     "Rio de Janeiro",
		District: "Botafogo",
		Street:   "Rua Voluntários da Pátria",
		Number:   "45",
		ZipCode:  "22270-000",
	}

	tests := []struct {
		name        string
		input       *usecase.UpdateLoveDecorationInput
		wantAddress func(original entity.Address) entity.Address
	}{
		{
			name:  "scalar fields only leave the address untouched",
			input: &usecase.UpdateLoveDecorationInput{Name: &newName},
			wantAddress: func(original entity.Address) entity.Address {
				return original
			},
		},
		{
			name:  "full address replaces every field",
			input: &usecase.UpdateLoveDecorationInput{Name: &newName, Address: &fullAddress},
			wantAddress: func(original entity.Address) entity.Address {
				want := *fullAddress.ToEntity()
				want.ID = original.ID
				want.CreatedAt = original.CreatedAt
				want.UpdatedAt = original.UpdatedAt
				return want
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLoveDecorationService(t)
			ctx := context.Background()
			id := uuid.New()
			addressInput := newAddressInput()
			original := addressInput.ToEntity()
			original.ID = uuid.New()
			originalCopy := *original
			existing := &entity.LoveDecoration{ID: id, Name: "Amor em Cena", Instagram: "@amoremcena", Address: original}

			fx.txManager.EXPECT().
				Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
				RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
					mockFactory := mockRepo.NewMockRepositoryFactory(t)
					txRepo := mockRepo.NewMockLoveDecorationRepository(t)

					mockFactory.EXPECT().NewLoveDecorationRepository().Return(txRepo)
					txRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
					txRepo.EXPECT().Update(ctx, existing).Return(nil)
					if tt.input.Address != nil {
						txAddressRepo := mockRepo.NewMockAddressRepository(t)
						mockFactory.EXPECT().NewAddressRepository().Return(txAddressRepo)
						txAddressRepo.EXPECT().UpdateAddress(ctx, original).Return(nil)
					}

					return fn(mockFactory)
				})

			updated, err := fx.service.Update(ctx, id, tt.input)

			require.NoError(t, err)
			assert.Equal(t, newName, updated.Name)
			assert.Equal(t, "@amoremcena", updated.Instagram)
			assert.Equal(t, tt.wantAddress(originalCopy), *updated.Address)
		})
	}
}

func TestLoveDecorationService_Update_NotFound(t *testing.T) {
	fx := createTestLoveDecorationService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txRepo := mockRepo.NewMockLoveDecorationRepository(t)

			mockFactory.EXPECT().NewLoveDecorationRepository().Return(txRepo)
			txRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrLoveDecorationNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.Update(ctx, id, &usecase.UpdateLoveDecorationInput{})

	assert.ErrorIs(t, err, domainerrors.ErrLoveDecorationNotFound)
}

func TestLoveDecorationService_FindOne(t *testing.T) {
	fx := createTestLoveDecorationService(t)
	ctx := context.Background()
	found := &entity.LoveDecoration{ID: uuid.New()}
	missing := uuid.New()

	fx.repo.EXPECT().FindByID(ctx, found.ID).Return(found, nil)
	fx.repo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrLoveDecorationNotFound)

	got, err := fx.service.FindOne(ctx, found.ID)
	require.NoError(t, err)
	assert.Same(t, found, got)

	_, err = fx.service.FindOne(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrLoveDecorationNotFound)
}

func TestLoveDecorationService_FindAll(t *testing.T) {
	fx := createTestLoveDecorationService(t)
	ctx := context.Background()
	all := []*entity.LoveDecoration{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.repo.EXPECT().FindAll(ctx).Return(all, nil)

	got, err := fx.service.FindAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, all, got)
}
