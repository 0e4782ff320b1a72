package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventhub/config"
	apimiddleware "eventhub/internal/delivery/api/middleware"
	"eventhub/internal/delivery/api/router"
	"eventhub/internal/delivery/api/router/handler"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/service"
	mockSvc "eventhub/internal/mocks/service"
	mockUC "eventhub/internal/mocks/usecase"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	adminToken   = "admin-token"
	partnerToken = "partner-token"
)

type apiFixtures struct {
	echo            *echo.Echo
	users           *mockUC.MockUserUsecase
	loveDecorations *mockUC.MockLoveDecorationUsecase
	partners        *mockUC.MockPartnerSupplierUsecase
	professions     *mockUC.MockProfessionUsecase
	subscriptions   *mockUC.MockSubscriptionUsecase
	verifier        *mockSvc.MockWebhookVerifier
	adminID         uuid.UUID
	partnerUserID   uuid.UUID
}

func createTestAPI(t *testing.T) apiFixtures {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := newDiscardLogger()

	fx := apiFixtures{
		users:           mockUC.NewMockUserUsecase(t),
		loveDecorations: mockUC.NewMockLoveDecorationUsecase(t),
		partners:        mockUC.NewMockPartnerSupplierUsecase(t),
		professions:     mockUC.NewMockProfessionUsecase(t),
		subscriptions:   mockUC.NewMockSubscriptionUsecase(t),
		verifier:        mockSvc.NewMockWebhookVerifier(t),
		adminID:         uuid.New(),
		partnerUserID:   uuid.New(),
	}

	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken(adminToken).
		Return(&service.Claims{UserID: fx.adminID, Roles: []string{"ADMIN"}}, nil).Maybe()
	tokens.EXPECT().ValidateToken(partnerToken).
		Return(&service.Claims{UserID: fx.partnerUserID, Roles: []string{"PARTNER"}}, nil).Maybe()
	tokens.EXPECT().ValidateToken(mock.Anything).
		Return(nil, errors.New("token is expired")).Maybe()

	guard := handler.NewProfileGuard(fx.users)
	fx.echo = newEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		AuthHandler:            handler.NewAuthHandler(fx.users),
		LoveDecorationHandler:  handler.NewLoveDecorationHandler(fx.loveDecorations, guard),
		PartnerSupplierHandler: handler.NewPartnerSupplierHandler(fx.partners, fx.subscriptions, guard),
		ProfessionHandler:      handler.NewProfessionHandler(fx.professions),
		WebhookHandler:         handler.NewWebhookHandler(fx.verifier, fx.subscriptions, logger),
		AuthMiddleware:         apimiddleware.NewAuthMiddleware(tokens),
	}).RegisterRoutes(fx.echo)

	return fx
}

func (fx apiFixtures) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

const loveDecorationBody = `{
	"loveDecoration": {
		"name": "Amor em Cena",
		"contact": "11999990000",
		"instagram": "@amoremcena",
		"address": {"state": "SP", "city": "São Paulo", "district": "Pinheiros", "street": "Rua A", "number": "1", "zipCode": "05422-001"}
	},
	"user": {"name": "Ana", "email": "ana@example.com", "password": "s3cret-pass"}
}`

func TestAPI_Health(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestAPI_CreateLoveDecoration(t *testing.T) {
	fx := createTestAPI(t)
	profileID := uuid.New()

	fx.loveDecorations.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.CreateLoveDecorationInput"), mock.AnythingOfType("*usecase.CreateUserInput")).
		RunAndReturn(func(_ context.Context, p *usecase.CreateLoveDecorationInput, u *usecase.CreateUserInput) (*usecase.LoveDecorationRegistration, error) {
			profile := p.ToEntity()
			profile.ID = profileID

			return &usecase.LoveDecorationRegistration{
				LoveDecoration: profile,
				User: &entity.User{
					ID:               uuid.New(),
					Email:            u.Email,
					PasswordHash:     "hashed",
					Role:             entity.RoleDecorator,
					LoveDecorationID: &profileID,
				},
			}, nil
		})

	rec := fx.do(http.MethodPost, "/love-decorations", loveDecorationBody, "")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "hashed")
	env := decode(t, rec)
	assert.NotEmpty(t, env.Meta.RequestID)

	var data struct {
		LoveDecoration struct {
			ID      uuid.UUID `json:"id"`
			TikTok  string    `json:"tiktok"`
			Address struct {
				City string `json:"city"`
			} `json:"address"`
		} `json:"loveDecoration"`
		User struct {
			LoveDecorationID uuid.UUID `json:"loveDecorationId"`
			Role             string    `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, profileID, data.LoveDecoration.ID)
	assert.Equal(t, "", data.LoveDecoration.TikTok)
	assert.Equal(t, "São Paulo", data.LoveDecoration.Address.City)
	assert.Equal(t, profileID, data.User.LoveDecorationID)
	assert.Equal(t, "DECORATOR", data.User.Role)
}

func TestAPI_CreateLoveDecoration_EmailTaken(t *testing.T) {
	fx := createTestAPI(t)

	fx.loveDecorations.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrEmailAlreadyRegistered)

	rec := fx.do(http.MethodPost, "/love-decorations", loveDecorationBody, "")

	require.Equal(t, http.StatusConflict, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "EMAIL_ALREADY_REGISTERED", env.Error.Code)
	assert.Equal(t, "Email already registered.", env.Error.Message)
}

func TestAPI_CreateLoveDecoration_ValidationFailed(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodPost, "/love-decorations", `{"loveDecoration": {"name": "x"}, "user": {"email": "ana@example.com"}}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "loveDecoration.address.city is required")
	fx.loveDecorations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestAPI_UpdatePartnerStatus_Authorization(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		wantCode int
	}{
		{name: "anonymous", token: "", wantCode: http.StatusUnauthorized},
		{name: "expired token", token: "stale", wantCode: http.StatusUnauthorized},
		{name: "partner", token: partnerToken, wantCode: http.StatusForbidden},
		{name: "admin", token: adminToken, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAPI(t)
			id := uuid.New()
			if tt.wantCode == http.StatusOK {
				fx.partners.EXPECT().UpdateStatus(mock.Anything, id, entity.PartnerStatusApproved).
					Return(&entity.PartnerSupplier{ID: id, Status: entity.PartnerStatusApproved}, nil)
			}

			rec := fx.do(http.MethodPatch, "/partner-suppliers/"+id.String()+"/status", `{"status": "APPROVED"}`, tt.token)

			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func TestAPI_UpdatePartnerStatus_RejectsUnknownStatus(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodPatch, "/partner-suppliers/"+uuid.NewString()+"/status", `{"status": "ARCHIVED"}`, adminToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_UpdatePartner_Ownership(t *testing.T) {
	ownPartnerID := uuid.New()

	tests := []struct {
		name     string
		target   uuid.UUID
		wantCode int
	}{
		{name: "own profile", target: ownPartnerID, wantCode: http.StatusOK},
		{name: "someone else's profile", target: uuid.New(), wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAPI(t)
			fx.users.EXPECT().GetUser(mock.Anything, fx.partnerUserID).
				Return(&entity.User{ID: fx.partnerUserID, PartnerSupplierID: &ownPartnerID}, nil)
			if tt.wantCode == http.StatusOK {
				fx.partners.EXPECT().Update(mock.Anything, tt.target, mock.AnythingOfType("*usecase.UpdatePartnerSupplierInput")).
					Return(&entity.PartnerSupplier{ID: tt.target, TradeName: "Buffet Estrela Dalva"}, nil)
			}

			rec := fx.do(http.MethodPatch, "/partner-suppliers/"+tt.target.String(), `{"tradeName": "Buffet Estrela Dalva"}`, partnerToken)

			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func TestAPI_PartnerSubscription(t *testing.T) {
	fx := createTestAPI(t)
	id := uuid.New()
	periodEnd := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)

	fx.subscriptions.EXPECT().GetByPartnerSupplier(mock.Anything, id).Return(&entity.Subscription{
		PartnerSupplierID:  id,
		SubscriptionStatus: "ACTIVE",
		PlanType:           entity.PlanTierPro,
		CurrentPeriodEnd:   periodEnd,
	}, nil)

	rec := fx.do(http.MethodGet, "/partner-suppliers/"+id.String()+"/subscription", "", adminToken)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"planType":"PRO"`)
	assert.Contains(t, rec.Body.String(), `"currentPeriodEnd":"2023-11-14T22:13:20Z"`)
}

func TestAPI_Professions(t *testing.T) {
	fx := createTestAPI(t)
	missing := uuid.New()

	fx.professions.EXPECT().FindOne(mock.Anything, missing).
		Return(nil, domainerrors.ErrProfessionNotFound.WrapMessage("profession not found"))

	rec := fx.do(http.MethodGet, "/professions/"+missing.String(), "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROFESSION_NOT_FOUND", decode(t, rec).Error.Code)

	rec = fx.do(http.MethodGet, "/professions/not-a-uuid", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = fx.do(http.MethodPost, "/professions", `{"name": "Buffet"}`, partnerToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPI_StripeWebhook(t *testing.T) {
	t.Run("bad signature", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.verifier.EXPECT().Verify([]byte(`{}`), "t=1,v1=bad").
			Return(nil, domainerrors.ErrInvalidWebhookSignature.WrapMessage("signature mismatch"))

		req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(`{}`))
		req.Header.Set("Stripe-Signature", "t=1,v1=bad")
		rec := httptest.NewRecorder()
		fx.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		fx.subscriptions.AssertNotCalled(t, "HandleStripeEvent", mock.Anything, mock.Anything)
	})

	t.Run("processing errors are acknowledged", func(t *testing.T) {
		fx := createTestAPI(t)
		event := &service.PaymentEvent{ID: "evt_1", Type: "customer.subscription.updated"}
		fx.verifier.EXPECT().Verify([]byte(`{"id":"evt_1"}`), "t=1,v1=ok").Return(event, nil)
		fx.subscriptions.EXPECT().HandleStripeEvent(mock.Anything, event).Return(errors.New("db down"))

		req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(`{"id":"evt_1"}`))
		req.Header.Set("Stripe-Signature", "t=1,v1=ok")
		rec := httptest.NewRecorder()
		fx.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"received": true}`, rec.Body.String())
	})
}
