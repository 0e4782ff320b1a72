package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"eventhub/internal/domain/constants"
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

type subscriptionServiceFixtures struct {
	service          usecase.SubscriptionUsecase
	userRepo         *mockRepo.MockUserRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	customers        *mockSvc.MockCustomerDirectory
}

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	customers := mockSvc.NewMockCustomerDirectory(t)

	service := NewSubscriptionService(SubscriptionServiceParams{
		UserRepo:         userRepo,
		SubscriptionRepo: subscriptionRepo,
		Customers:        customers,
		Logger:           newDiscardLogger(),
	})

	return subscriptionServiceFixtures{
		service:          service,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		customers:        customers,
	}
}

func newSubscriptionPayload() *usecase.StripeSubscriptionPayload {
	return &usecase.StripeSubscriptionPayload{
		ID:               "sub_123",
		Customer:         "cus_123",
		Status:           "active",
		CurrentPeriodEnd: 1700000000,
		Plan:             &usecase.StripePlan{Amount: 9990},
	}
}

func TestSubscriptionService_Reconcile_Success(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	partnerID := uuid.New()
	user := &entity.User{
		ID:                uuid.New(),
		PartnerSupplierID: &partnerID,
		PartnerSupplier:   &entity.PartnerSupplier{ID: partnerID, TradeName: "Buffet Estrela"},
	}

	fx.customers.EXPECT().RetrieveCustomer(ctx, "cus_123").
		Return(&service.PaymentCustomer{ID: "cus_123", Email: "contato@estrela.com.br"}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "contato@estrela.com.br").Return(user, nil)

	var stored *entity.Subscription
	fx.subscriptionRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Subscription")).
		Run(func(_ context.Context, s *entity.Subscription) { stored = s }).
		Return(nil)

	err := fx.service.ReconcileFromStripe(ctx, newSubscriptionPayload())

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, partnerID, stored.PartnerSupplierID)
	assert.Equal(t, "cus_123", stored.StripeCustomerID)
	assert.Equal(t, "sub_123", stored.SubscriptionID)
	assert.Equal(t, "ACTIVE", stored.SubscriptionStatus)
	assert.Equal(t, entity.PlanTierPro, stored.PlanType)
	assert.Equal(t, "2023-11-14T22:13:20Z", stored.CurrentPeriodEnd.Format(time.RFC3339))
	assert.False(t, stored.CancelAtPeriodEnd)
}

func TestSubscriptionService_Reconcile_ReplayIsIdempotent(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	partnerID := uuid.New()

	fx.customers.EXPECT().RetrieveCustomer(ctx, "cus_123").
		Return(&service.PaymentCustomer{ID: "cus_123", Email: "contato@estrela.com.br"}, nil).Times(2)
	fx.userRepo.EXPECT().FindByEmail(ctx, "contato@estrela.com.br").
		Return(&entity.User{PartnerSupplierID: &partnerID}, nil).Times(2)

	var rows []entity.Subscription
	fx.subscriptionRepo.EXPECT().Upsert(ctx, mock.Anything).
		Run(func(_ context.Context, s *entity.Subscription) { rows = append(rows, *s) }).
		Return(nil).Times(2)

	payload := newSubscriptionPayload()
	require.NoError(t, fx.service.ReconcileFromStripe(ctx, payload))
	require.NoError(t, fx.service.ReconcileFromStripe(ctx, payload))

	require.Len(t, rows, 2)
	assert.Equal(t, rows[0], rows[1])
}

func TestSubscriptionService_Reconcile_SkipsUnresolvable(t *testing.T) {
	partnerless := &entity.User{ID: uuid.New()}

	tests := []struct {
		name  string
		setup func(fx subscriptionServiceFixtures)
	}{
		{
			name: "customer lookup fails",
			setup: func(fx subscriptionServiceFixtures) {
				fx.customers.EXPECT().RetrieveCustomer(mock.Anything, "cus_123").Return(nil, errors.New("stripe: 404"))
			},
		},
		{
			name: "customer without email",
			setup: func(fx subscriptionServiceFixtures) {
				fx.customers.EXPECT().RetrieveCustomer(mock.Anything, "cus_123").
					Return(&service.PaymentCustomer{ID: "cus_123"}, nil)
			},
		},
		{
			name: "deleted customer",
			setup: func(fx subscriptionServiceFixtures) {
				fx.customers.EXPECT().RetrieveCustomer(mock.Anything, "cus_123").
					Return(&service.PaymentCustomer{ID: "cus_123", Email: "x@example.com", Deleted: true}, nil)
			},
		},
		{
			name: "no account for email",
			setup: func(fx subscriptionServiceFixtures) {
				fx.customers.EXPECT().RetrieveCustomer(mock.Anything, "cus_123").
					Return(&service.PaymentCustomer{ID: "cus_123", Email: "x@example.com"}, nil)
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "x@example.com").Return(nil, repository.ErrUserNotFound)
			},
		},
		{
			name: "account without partner",
			setup: func(fx subscriptionServiceFixtures) {
				fx.customers.EXPECT().RetrieveCustomer(mock.Anything, "cus_123").
					Return(&service.PaymentCustomer{ID: "cus_123", Email: "x@example.com"}, nil)
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "x@example.com").Return(partnerless, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSubscriptionService(t)
			tt.setup(fx)

			err := fx.service.ReconcileFromStripe(context.Background(), newSubscriptionPayload())

			require.NoError(t, err)
			fx.subscriptionRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		})
	}
}

func TestSubscriptionService_Reconcile_DatabaseErrorPropagates(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	fx.customers.EXPECT().RetrieveCustomer(ctx, "cus_123").
		Return(&service.PaymentCustomer{ID: "cus_123", Email: "x@example.com"}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "x@example.com").Return(nil, errors.New("connection reset"))

	err := fx.service.ReconcileFromStripe(ctx, newSubscriptionPayload())

	require.Error(t, err)
}

func TestSubscriptionService_HandleStripeEvent(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	partnerID := uuid.New()

	object, err := json.Marshal(map[string]any{
		"id":                   "sub_9",
		"customer":             "cus_9",
		"status":               "past_due",
		"cancel_at_period_end": true,
		"items": map[string]any{
			"data": []map[string]any{{
				"current_period_end": 1700000000,
				"price":              map[string]any{"unit_amount": 19990},
			}},
		},
	})
	require.NoError(t, err)

	fx.customers.EXPECT().RetrieveCustomer(ctx, "cus_9").
		Return(&service.PaymentCustomer{ID: "cus_9", Email: "x@example.com"}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "x@example.com").Return(&entity.User{PartnerSupplierID: &partnerID}, nil)
	fx.subscriptionRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(s *entity.Subscription) bool {
		return s.SubscriptionStatus == "PAST_DUE" &&
			s.PlanType == entity.PlanTierPremium &&
			s.CancelAtPeriodEnd &&
			s.CurrentPeriodEnd.Equal(time.Unix(1700000000, 0))
	})).Return(nil)

	err = fx.service.HandleStripeEvent(ctx, &service.PaymentEvent{
		ID:     "evt_1",
		Type:   constants.StripeEventSubscriptionUpdated,
		Object: object,
	})

	require.NoError(t, err)
}

func TestSubscriptionService_HandleStripeEvent_IgnoresOtherTypes(t *testing.T) {
	fx := createTestSubscriptionService(t)

	err := fx.service.HandleStripeEvent(context.Background(), &service.PaymentEvent{
		ID:     "evt_2",
		Type:   "invoice.paid",
		Object: json.RawMessage(`{}`),
	})

	require.NoError(t, err)
	fx.customers.AssertNotCalled(t, "RetrieveCustomer", mock.Anything, mock.Anything)
}

func TestSubscriptionService_HandleStripeEvent_MalformedObject(t *testing.T) {
	fx := createTestSubscriptionService(t)

	err := fx.service.HandleStripeEvent(context.Background(), &service.PaymentEvent{
		Type:   constants.StripeEventSubscriptionCreated,
		Object: json.RawMessage(`"not an object"`),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSubscriptionService_GetByPartnerSupplier_NotFound(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.subscriptionRepo.EXPECT().FindByPartnerSupplierID(ctx, id).Return(nil, repository.ErrSubscriptionNotFound)

	_, err := fx.service.GetByPartnerSupplier(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestNormalizeSubscription_Defaults(t *testing.T) {
	partnerID := uuid.New()
	payload := &usecase.StripeSubscriptionPayload{ID: "sub_1", Customer: "cus_1", Status: "canceled"}

	got := normalizeSubscription(partnerID, payload)

	assert.Equal(t, "CANCELED", got.SubscriptionStatus)
	assert.Equal(t, entity.PlanTierUnknown, got.PlanType)
	assert.False(t, got.CancelAtPeriodEnd)
	assert.Equal(t, time.Unix(0, 0).UTC(), got.CurrentPeriodEnd)
}
