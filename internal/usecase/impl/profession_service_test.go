package impl

import (
	"context"
	"testing"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	mockRepo "eventhub/internal/mocks/repository"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfessionService(t *testing.T) (usecase.ProfessionUsecase, *mockRepo.MockProfessionRepository) {
	repo := mockRepo.NewMockProfessionRepository(t)

	return NewProfessionService(ProfessionServiceParams{Repo: repo, Logger: newDiscardLogger()}), repo
}

func TestProfessionService_Create(t *testing.T) {
	service, repo := createTestProfessionService(t)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profession")).
		Run(func(_ context.Context, p *entity.Profession) { p.ID = uuid.New() }).
		Return(nil)

	got, err := service.Create(ctx, &usecase.CreateProfessionInput{Name: "Buffet", Description: "Comida e bebida"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "Buffet", got.Name)
}

func TestProfessionService_Create_Duplicate(t *testing.T) {
	service, repo := createTestProfessionService(t)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrProfessionAlreadyExists.WrapMessage("name"))

	_, err := service.Create(ctx, &usecase.CreateProfessionInput{Name: "Buffet"})

	assert.ErrorIs(t, err, domainerrors.ErrProfessionAlreadyExists)
}

func TestProfessionService_Update_PartialFields(t *testing.T) {
	service, repo := createTestProfessionService(t)
	ctx := context.Background()
	existing := &entity.Profession{ID: uuid.New(), Name: "Buffet", Description: "Comida"}
	description := "Comida, bebida e garçons"

	repo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	repo.EXPECT().Update(ctx, existing).Return(nil)

	got, err := service.Update(ctx, existing.ID, &usecase.UpdateProfessionInput{Description: &description})

	require.NoError(t, err)
	assert.Equal(t, "Buffet", got.Name)
	assert.Equal(t, description, got.Description)
}

func TestProfessionService_NotFound(t *testing.T) {
	service, repo := createTestProfessionService(t)
	ctx := context.Background()
	id := uuid.New()

	repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProfessionNotFound)
	repo.EXPECT().Delete(ctx, id).Return(repository.ErrProfessionNotFound)

	_, err := service.FindOne(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrProfessionNotFound)

	err = service.Delete(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrProfessionNotFound)
}

func TestProfessionService_Delete_InUse(t *testing.T) {
	service, repo := createTestProfessionService(t)
	ctx := context.Background()
	id := uuid.New()

	repo.EXPECT().Delete(ctx, id).Return(domainerrors.ErrConflict.WrapMessage("profession in use"))

	err := service.Delete(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}
