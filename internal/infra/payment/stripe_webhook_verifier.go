package payment

import (
	"eventhub/config"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v82/webhook"
)

type stripeWebhookVerifier struct {
	secret string
}

// NewStripeWebhookVerifier builds a verifier for the configured endpoint secret.
func NewStripeWebhookVerifier(cfg *config.Config) (service.WebhookVerifier, error) {
	if cfg.Stripe == nil || cfg.Stripe.WebhookSecret == "" {
		return nil, errors.New("stripe webhook secret must be provided")
	}

	return &stripeWebhookVerifier{secret: cfg.Stripe.WebhookSecret}, nil
}

// Verify checks the Stripe-Signature header and the timestamp tolerance.
// Events from other API versions are accepted; only data.object is consumed.
func (v *stripeWebhookVerifier) Verify(payload []byte, signatureHeader string) (*service.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, domainerrors.ErrInvalidWebhookSignature.WrapMessage(err.Error())
	}

	paymentEvent := &service.PaymentEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}
	if event.Data != nil {
		paymentEvent.Object = event.Data.Raw
	}

	return paymentEvent, nil
}
