package usecase

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/service"

	"github.com/google/uuid"
)

// StripePlan is the legacy plan object of a Stripe subscription.
type StripePlan struct {
	Amount int64 `json:"amount"`
}

// StripeSubscriptionItem is one entry of subscription.items.data.
type StripeSubscriptionItem struct {
	CurrentPeriodEnd int64       `json:"current_period_end"`
	Plan             *StripePlan `json:"plan"`
	Price            *struct {
		UnitAmount int64 `json:"unit_amount"`
	} `json:"price"`
}

// StripeSubscriptionPayload is the data.object of a customer.subscription.* event.
type StripeSubscriptionPayload struct {
	ID                string      `json:"id"`
	Customer          string      `json:"customer"`
	Status            string      `json:"status"`
	CurrentPeriodEnd  int64       `json:"current_period_end"`
	CancelAtPeriodEnd *bool       `json:"cancel_at_period_end"`
	Plan              *StripePlan `json:"plan"`
	Items             struct {
		Data []StripeSubscriptionItem `json:"data"`
	} `json:"items"`
}

// PeriodEnd returns current_period_end in epoch seconds. Newer API versions
// only carry it on the subscription items.
func (p *StripeSubscriptionPayload) PeriodEnd() int64 {
	if p.CurrentPeriodEnd != 0 {
		return p.CurrentPeriodEnd
	}
	for _, item := range p.Items.Data {
		if item.CurrentPeriodEnd != 0 {
			return item.CurrentPeriodEnd
		}
	}

	return 0
}

// PlanAmount returns the billed amount in cents, preferring the top-level plan.
func (p *StripeSubscriptionPayload) PlanAmount() int64 {
	if p.Plan != nil {
		return p.Plan.Amount
	}
	for _, item := range p.Items.Data {
		if item.Plan != nil {
			return item.Plan.Amount
		}
		if item.Price != nil {
			return item.Price.UnitAmount
		}
	}

	return 0
}

// SubscriptionUsecase reconciles Stripe subscriptions into local records.
type SubscriptionUsecase interface {
	// HandleStripeEvent dispatches a verified webhook event. Unhandled types are ignored.
	HandleStripeEvent(ctx context.Context, event *service.PaymentEvent) error

	// ReconcileFromStripe upserts the subscription of the partner owning payload.Customer.
	// Unresolvable customers and accounts are logged and skipped without error.
	ReconcileFromStripe(ctx context.Context, payload *StripeSubscriptionPayload) error

	GetByPartnerSupplier(ctx context.Context, partnerSupplierID uuid.UUID) (*entity.Subscription, error)
}
