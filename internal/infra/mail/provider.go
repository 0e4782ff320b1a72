package mail

import (
	"context"
	"log/slog"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// logOnlySender records mail it would have sent. Used when mail is not configured.
type logOnlySender struct {
	logger *slog.Logger
}

func (s *logOnlySender) Send(ctx context.Context, m *service.Mail) error {
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).InfoContext(ctx, "Mail delivery disabled, skipping",
		slog.String("to", m.To),
		slog.String("subject", m.Subject),
	)

	return nil
}

// SenderParams holds dependencies for the API-side MailSender.
type SenderParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Publisher service.EventPublisher
}

// NewMailSender picks inline SMTP or queued delivery from mail.delivery.
func NewMailSender(params SenderParams) (service.MailSender, error) {
	cfg := params.Config.Mail
	if cfg == nil {
		params.Logger.Info("Mail not configured, using log-only sender")

		return &logOnlySender{logger: params.Logger}, nil
	}

	switch cfg.Delivery {
	case config.MailDeliverySMTP:
		return NewSMTPSender(cfg, params.Logger)
	case config.MailDeliveryQueue:
		return NewQueuedSender(params.Publisher), nil
	default:
		return nil, errors.Errorf("unknown mail delivery: %s", cfg.Delivery)
	}
}

// NewWorkerMailSender delivers over SMTP whatever mail.delivery says;
// the worker is the consumer of the queue and never publishes to it.
func NewWorkerMailSender(cfg *config.Config, logger *slog.Logger) (service.MailSender, error) {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		logger.Warn("SMTP not configured, mail worker will only log mail")

		return &logOnlySender{logger: logger}, nil
	}

	return NewSMTPSender(cfg.Mail, logger)
}
