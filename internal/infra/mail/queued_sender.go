package mail

import (
	"context"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/service"

	"github.com/pkg/errors"
)

// queuedSender hands mail to the mail worker through the event publisher.
type queuedSender struct {
	publisher service.EventPublisher
}

// NewQueuedSender returns a MailSender that only enqueues.
func NewQueuedSender(publisher service.EventPublisher) service.MailSender {
	return &queuedSender{publisher: publisher}
}

func (s *queuedSender) Send(ctx context.Context, m *service.Mail) error {
	event := &service.MailEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Mail:      *m,
	}

	return errors.Wrap(s.publisher.PublishMailEvent(ctx, event), "enqueue mail")
}
