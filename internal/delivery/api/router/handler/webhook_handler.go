package handler

import (
	"io"
	"log/slog"
	"net/http"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

const stripeSignatureHeader = "Stripe-Signature"

// WebhookHandler receives payment processor webhooks.
type WebhookHandler struct {
	verifier      service.WebhookVerifier
	subscriptions usecase.SubscriptionUsecase
	logger        *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(verifier service.WebhookVerifier, subscriptions usecase.SubscriptionUsecase, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, subscriptions: subscriptions, logger: logger}
}

// Stripe verifies the signature over the raw body, then reconciles the event.
// Processing failures are logged and acknowledged with 200 so Stripe does not retry.
func (h *WebhookHandler) Stripe(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errors.Wrap(err, "failed to read webhook body")
	}

	event, err := h.verifier.Verify(payload, c.Request().Header.Get(stripeSignatureHeader))
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
	)

	if err := h.subscriptions.HandleStripeEvent(ctx, event); err != nil {
		logger.Error("Failed to process Stripe event", slog.Any("error", err))
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
