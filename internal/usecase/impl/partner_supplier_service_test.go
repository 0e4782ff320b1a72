package impl

import (
	"context"
	"testing"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	mockRepo "eventhub/internal/mocks/repository"
	mockSvc "eventhub/internal/mocks/service"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type partnerSupplierServiceFixtures struct {
	service    usecase.PartnerSupplierUsecase
	txManager  *mockRepo.MockTransactionManager
	userRepo   *mockRepo.MockUserRepository
	repo       *mockRepo.MockPartnerSupplierRepository
	hasher     *mockSvc.MockPasswordHasher
	mailSender *mockSvc.MockMailSender
}

func createTestPartnerSupplierService(t *testing.T) partnerSupplierServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	repo := mockRepo.NewMockPartnerSupplierRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	mailSender := mockSvc.NewMockMailSender(t)

	service := NewPartnerSupplierService(PartnerSupplierServiceParams{
		TxManager:  txManager,
		UserRepo:   userRepo,
		Repo:       repo,
		Hasher:     hasher,
		MailSender: mailSender,
		Logger:     newDiscardLogger(),
	})

	return partnerSupplierServiceFixtures{
		service:    service,
		txManager:  txManager,
		userRepo:   userRepo,
		repo:       repo,
		hasher:     hasher,
		mailSender: mailSender,
	}
}

func newPartnerSupplierInput() *usecase.CreatePartnerSupplierInput {
	return &usecase.CreatePartnerSupplierInput{
		TradeName:   "Buffet Estrela",
		CompanyName: "Estrela Eventos LTDA",
		Document:    "12345678000199",
		Contact:     "+55 11 98888-0000",
		Address:     newAddressInput(),
	}
}

func expectPartnerRegistration(t *testing.T, fx partnerSupplierServiceFixtures, partnerID uuid.UUID) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txRepo := mockRepo.NewMockPartnerSupplierRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewPartnerSupplierRepository().Return(txRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
			txRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PartnerSupplier")).
				Run(func(_ context.Context, partner *entity.PartnerSupplier) { partner.ID = partnerID }).
				Return(nil)
			txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(_ context.Context, user *entity.User) { user.ID = uuid.New() }).
				Return(nil)

			return fn(mockFactory)
		})
}

func TestPartnerSupplierService_Create_Success(t *testing.T) {
	fx := createTestPartnerSupplierService(t)
	ctx := context.Background()
	userInput := newUserInput("contato@estrela.com.br")
	partnerID := uuid.New()

	fx.userRepo.EXPECT().ExistsByEmail(ctx, userInput.Email).Return(false, nil)
	fx.hasher.EXPECT().Hash(userInput.Password).Return("hashed", nil)
	expectPartnerRegistration(t, fx, partnerID)
	fx.mailSender.EXPECT().Send(ctx, mock.MatchedBy(func(m *service.Mail) bool {
		return m.To == userInput.Email && m.Subject == "Cadastro recebido"
	})).Return(nil)

	reg, err := fx.service.Create(ctx, newPartnerSupplierInput(), userInput)

	require.NoError(t, err)
	assert.Equal(t, entity.PartnerStatusPending, reg.PartnerSupplier.Status)
	assert.Equal(t, partnerID, reg.PartnerSupplier.ID)
	require.NotNil(t, reg.User.PartnerSupplierID)
	assert.Equal(t, partnerID, *reg.User.PartnerSupplierID)
	assert.Equal(t, entity.RolePartner, reg.User.Role)
}

func TestPartnerSupplierService_Create_MailFailureIsIgnored(t *testing.T) {
	fx := createTestPartnerSupplierService(t)
	ctx := context.Background()
	userInput := newUserInput("contato@estrela.com.br")

	fx.userRepo.EXPECT().ExistsByEmail(ctx, userInput.Email).Return(false, nil)
	fx.hasher.EXPECT().Hash(userInput.Password).Return("hashed", nil)
	expectPartnerRegistration(t, fx, uuid.New())
	fx.mailSender.EXPECT().Send(ctx, mock.Anything).Return(errors.New("smtp: connection refused"))

	reg, err := fx.service.Create(ctx, newPartnerSupplierInput(), userInput)

	require.NoError(t, err)
	assert.NotNil(t, reg)
}

func TestPartnerSupplierService_Create_EmailTaken(t *testing.T) {
	fx := createTestPartnerSupplierService(t)
	ctx := context.Background()
	userInput := newUserInput("contato@estrela.com.br")

	fx.userRepo.EXPECT().ExistsByEmail(ctx, userInput.Email).Return(true, nil)

	_, err := fx.service.Create(ctx, newPartnerSupplierInput(), userInput)

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	fx.mailSender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestPartnerSupplierService_Create_DuplicateDocument(t *testing.T) {
	fx := createTestPartnerSupplierService(t)
	ctx := context.Background()
	userInput := newUserInput("contato@estrela.com.br")

	fx.userRepo.EXPECT().ExistsByEmail(ctx, userInput.Email).Return(false, nil)
	fx.hasher.EXPECT().Hash(userInput.Password).Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txRepo := mockRepo.NewMockPartnerSupplierRepository(t)

			mockFactory.EXPECT().NewPartnerSupplierRepository().Return(txRepo)
			txRepo.EXPECT().Create(ctx, mock.Anything).
				Return(domainerrors.ErrPartnerDocumentConflict.WrapMessage("document"))

			return fn(mockFactory)
		})

	_, err := fx.service.Create(ctx, newPartnerSupplierInput(), userInput)

	assert.ErrorIs(t, err, domainerrors.ErrPartnerDocumentConflict)
}

func TestPartnerSupplierService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name        string
		current     entity.PartnerStatus
		next        entity.PartnerStatus
		wantSubject string
	}{
		{name: "approve", current: entity.PartnerStatusPending, next: entity.PartnerStatusApproved, wantSubject: "Cadastro aprovado"},
		{name: "reject", current: entity.PartnerStatusPending, next: entity.PartnerStatusRejected, wantSubject: "Cadastro não aprovado"},
		{name: "back to pending sends nothing", current: entity.PartnerStatusApproved, next: entity.PartnerStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPartnerSupplierService(t)
			ctx := context.Background()
			id := uuid.New()
			partner := &entity.PartnerSupplier{ID: id, TradeName: "Buffet Estrela", Status: tt.current}

			fx.repo.EXPECT().FindByID(ctx, id).Return(partner, nil)
			fx.repo.EXPECT().UpdateStatus(ctx, id, tt.next).Return(nil)
			fx.userRepo.EXPECT().FindByPartnerSupplierID(ctx, id).
				Return(&entity.User{Email: "contato@estrela.com.br"}, nil)
			if tt.wantSubject != "" {
				fx.mailSender.EXPECT().Send(ctx, mock.MatchedBy(func(m *service.Mail) bool {
					return m.To == "contato@estrela.com.br" && m.Subject == tt.wantSubject
				})).Return(nil)
			}

			got, err := fx.service.UpdateStatus(ctx, id, tt.next)

			require.NoError(t, err)
			assert.Equal(t, tt.next, got.Status)
		})
	}
}

func TestPartnerSupplierService_UpdateStatus_SameStatusIsNoop(t *testing.T) {
	fx := createTestPartnerSupplierService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.repo.EXPECT().FindByID(ctx, id).Return(&entity.PartnerSupplier{ID: id, Status: entity.PartnerStatusApproved}, nil)

	got, err := fx.service.UpdateStatus(ctx, id, entity.PartnerStatusApproved)

	require.NoError(t, err)
	assert.Equal(t, entity.PartnerStatusApproved, got.Status)
	fx.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	fx.mailSender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestPartnerSupplierService_UpdateStatus_Invalid(t *testing.T) {
	fx := createTestPartnerSupplierService(t)

	_, err := fx.service.UpdateStatus(context.Background(), uuid.New(), entity.PartnerStatus("ARCHIVED"))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPartnerStatus)
}

func TestPartnerSupplierService_UpdateStatus_NotFound(t *testing.T) {
	fx := createTestPartnerSupplierService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrPartnerSupplierNotFound)

	_, err := fx.service.UpdateStatus(ctx, id, entity.PartnerStatusApproved)

	assert.ErrorIs(t, err, domainerrors.ErrPartnerSupplierNotFound)
}

func TestPartnerSupplierService_Update_ReplacesAddress(t *testing.T) {
	fx := createTestPartnerSupplierService(t)
	ctx := context.Background()
	id := uuid.New()
	addressInput := newAddressInput()
	address := addressInput.ToEntity()
	address.ID = uuid.New()
	existing := &entity.PartnerSupplier{ID: id, TradeName: "Buffet Estrela", Address: address}
	newTradeName := "Buffet Estrela Dalva"
	newAddress := usecase.AddressInput{State: "MG", City: "Belo Horizonte", District: "Savassi", Street: "Rua Pernambuco", Number: "10", ZipCode: "30130-150"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txRepo := mockRepo.NewMockPartnerSupplierRepository(t)
			txAddressRepo := mockRepo.NewMockAddressRepository(t)

			mockFactory.EXPECT().NewPartnerSupplierRepository().Return(txRepo)
			mockFactory.EXPECT().NewAddressRepository().Return(txAddressRepo)
			txRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
			txRepo.EXPECT().Update(ctx, existing).Return(nil)
			txAddressRepo.EXPECT().UpdateAddress(ctx, address).Return(nil)

			return fn(mockFactory)
		})

	got, err := fx.service.Update(ctx, id, &usecase.UpdatePartnerSupplierInput{
		TradeName: &newTradeName,
		Address:   &newAddress,
	})

	require.NoError(t, err)
	assert.Equal(t, newTradeName, got.TradeName)
	assert.Equal(t, address.ID, got.Address.ID)
	assert.Equal(t, "Belo Horizonte", got.Address.City)
	assert.Empty(t, got.Address.Complement)
}
