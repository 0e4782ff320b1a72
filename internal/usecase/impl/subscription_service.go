package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/constants"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type subscriptionService struct {
	userRepo         repository.UserRepository
	subscriptionRepo repository.SubscriptionRepository
	customers        service.CustomerDirectory
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	SubscriptionRepo repository.SubscriptionRepository
	Customers        service.CustomerDirectory
	Logger           *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		userRepo:         params.UserRepo,
		subscriptionRepo: params.SubscriptionRepo,
		customers:        params.Customers,
		logger:           params.Logger,
	}
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func isSubscriptionEvent(eventType string) bool {
	switch eventType {
	case constants.StripeEventSubscriptionCreated,
		constants.StripeEventSubscriptionUpdated,
		constants.StripeEventSubscriptionDeleted:
		return true
	default:
		return false
	}
}

func (srv *subscriptionService) HandleStripeEvent(ctx context.Context, event *service.PaymentEvent) error {
	if !isSubscriptionEvent(event.Type) {
		srv.log(ctx).Debug("Ignoring payment event",
			slog.String("event_id", event.ID),
			slog.String("event_type", event.Type),
		)

		return nil
	}

	var payload usecase.StripeSubscriptionPayload
	if err := json.Unmarshal(event.Object, &payload); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "malformed subscription object: "+err.Error())
	}

	return srv.ReconcileFromStripe(ctx, &payload)
}

// ReconcileFromStripe resolves customer -> email -> account -> partner and
// overwrites the partner's single subscription row.
func (srv *subscriptionService) ReconcileFromStripe(ctx context.Context, payload *usecase.StripeSubscriptionPayload) error {
	logger := srv.log(ctx).With(
		slog.String("subscription_id", payload.ID),
		slog.String("stripe_customer_id", payload.Customer),
	)

	customer, err := srv.customers.RetrieveCustomer(ctx, payload.Customer)
	if err != nil {
		logger.Error("Failed to retrieve Stripe customer", slog.Any("error", err))

		return nil
	}
	if customer == nil || customer.Deleted || customer.Email == "" {
		logger.Warn("Stripe customer has no email")

		return nil
	}

	user, err := srv.userRepo.FindByEmail(ctx, customer.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logger.Warn("No account for Stripe customer email")

			return nil
		}

		return errors.Wrap(err, "failed to find user by email")
	}
	if user.PartnerSupplierID == nil {
		logger.Warn("Account is not linked to a partner supplier", slog.String("user_id", user.ID.String()))

		return nil
	}

	subscription := normalizeSubscription(*user.PartnerSupplierID, payload)
	if err := srv.subscriptionRepo.Upsert(ctx, subscription); err != nil {
		return errors.Wrap(err, "failed to upsert subscription")
	}

	tradeName := ""
	if user.PartnerSupplier != nil {
		tradeName = user.PartnerSupplier.TradeName
	}
	logger.Info("Subscription reconciled",
		slog.String("partner_supplier_id", subscription.PartnerSupplierID.String()),
		slog.String("trade_name", tradeName),
		slog.String("status", subscription.SubscriptionStatus),
		slog.String("plan", subscription.PlanType.String()),
	)

	return nil
}

func (srv *subscriptionService) GetByPartnerSupplier(ctx context.Context, partnerSupplierID uuid.UUID) (*entity.Subscription, error) {
	subscription, err := srv.subscriptionRepo.FindByPartnerSupplierID(ctx, partnerSupplierID)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrSubscriptionNotFound, domainerrors.ErrSubscriptionNotFound)
	}

	return subscription, nil
}

// normalizeSubscription is pure: the same payload always yields the same row.
func normalizeSubscription(partnerSupplierID uuid.UUID, payload *usecase.StripeSubscriptionPayload) *entity.Subscription {
	cancelAtPeriodEnd := false
	if payload.CancelAtPeriodEnd != nil {
		cancelAtPeriodEnd = *payload.CancelAtPeriodEnd
	}

	return &entity.Subscription{
		PartnerSupplierID:  partnerSupplierID,
		StripeCustomerID:   payload.Customer,
		SubscriptionID:     payload.ID,
		SubscriptionStatus: strings.ToUpper(payload.Status),
		PlanType:           entity.PlanTierFromAmount(payload.PlanAmount()),
		CurrentPeriodEnd:   time.Unix(payload.PeriodEnd(), 0).UTC(),
		CancelAtPeriodEnd:  cancelAtPeriodEnd,
	}
}
