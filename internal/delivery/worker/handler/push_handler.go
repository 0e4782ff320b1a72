// Package handler contains the Pub/Sub push handler of the mail worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/constants"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	"eventhub/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler delivers mail jobs pushed by Pub/Sub.
type PushHandler struct {
	audience       string
	serviceAccount string
	validate       tokenValidator
	sender         service.MailSender
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Sender service.MailSender
	Logger *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler.
// OIDC verification is enabled when worker.pushAudience is set.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validate: idtoken.Validate,
		sender:   params.Sender,
		logger:   params.Logger,
	}
	if cfg := params.Config.Worker; cfg != nil {
		h.audience = cfg.PushAudience
		h.serviceAccount = cfg.PushServiceAccount
	}
	if h.audience == "" && params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		params.Logger.Warn("[Worker] Push authentication disabled: worker.pushAudience is empty")
	}

	return h
}

// HandlePush answers 200 for delivered or undeliverable jobs and 503 when
// SMTP failed, so only transient failures are redelivered.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyPushToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	event, err := decodeMailEvent(&pushMsg)
	if err != nil {
		h.logger.Error("[Worker] Dropping malformed mail event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.sender.Send(ctx, &event.Mail); err != nil {
		reqLogger.Error("[Worker] Failed to send mail",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.String("subject", event.Mail.Subject),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Mail sent",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("subject", event.Mail.Subject),
	)

	return c.NoContent(http.StatusOK)
}

func decodeMailEvent(pushMsg *pubsub.PushMessage) (*service.MailEvent, error) {
	if eventType := pushMsg.Message.Attributes[constants.AttrEventType]; eventType != "" && eventType != constants.EventTypeMail {
		return nil, errors.Errorf("unexpected event type %q", eventType)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.MailEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse mail event")
	}
	if event.Mail.To == "" {
		return nil, errors.New("mail event has no recipient")
	}

	return &event, nil
}

// extractRequestID prefers message attributes, then the event, then the incoming request.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.MailEvent) string {
	if requestID := pushMsg.Message.Attributes[constants.AttrRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPushToken checks the OIDC token Google attaches to authenticated push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPushToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := h.validate(req.Context(), token, h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	if h.serviceAccount != "" {
		if email, _ := payload.Claims["email"].(string); email != h.serviceAccount {
			return errors.Errorf("unexpected service account: %s", email)
		}
	}

	return nil
}
