package mail

import (
	"context"
	"io"
	"log/slog"
	"net/smtp"
	"testing"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSMTPSender_Send(t *testing.T) {
	sender, err := NewSMTPSender(&config.MailConfig{
		Host:     "smtp.example.com",
		Port:     2525,
		Username: "user",
		Password: "secret",
		From:     "hello@eventhub.example",
	}, discardLogger())
	require.NoError(t, err)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	var gotAuth smtp.Auth
	impl := sender.(*smtpSender)
	impl.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotAuth, gotFrom, gotTo, gotMsg = addr, a, from, to, msg

		return nil
	}

	err = sender.Send(context.Background(), &service.Mail{To: "partner@example.com", Subject: "Cadastro concluído", Body: "Olá"})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:2525", gotAddr)
	assert.NotNil(t, gotAuth)
	assert.Equal(t, "hello@eventhub.example", gotFrom)
	assert.Equal(t, []string{"partner@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "To: partner@example.com\r\n")
	assert.Contains(t, string(gotMsg), "Content-Type: text/plain; charset=UTF-8\r\n\r\nOlá")
	assert.Contains(t, string(gotMsg), "Subject: =?utf-8?q?Cadastro_conclu=C3=ADdo?=\r\n")
}

func TestSMTPSender_Defaults(t *testing.T) {
	sender, err := NewSMTPSender(&config.MailConfig{Host: "localhost"}, discardLogger())
	require.NoError(t, err)

	impl := sender.(*smtpSender)
	assert.Equal(t, "localhost:587", impl.addr)
	assert.Equal(t, "no-reply@localhost", impl.from)
	assert.Nil(t, impl.auth)

	_, err = NewSMTPSender(&config.MailConfig{}, discardLogger())
	assert.Error(t, err)
}

type recordingPublisher struct {
	events []*service.MailEvent
	err    error
}

func (p *recordingPublisher) PublishMailEvent(_ context.Context, event *service.MailEvent) error {
	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func TestQueuedSender_Send(t *testing.T) {
	publisher := &recordingPublisher{}
	sender := NewQueuedSender(publisher)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-9")

	require.NoError(t, sender.Send(ctx, &service.Mail{To: "a@example.com", Subject: "s", Body: "b"}))

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "req-9", publisher.events[0].RequestID)
	assert.Equal(t, "a@example.com", publisher.events[0].Mail.To)

	publisher.err = assert.AnError
	assert.ErrorIs(t, sender.Send(ctx, &service.Mail{}), assert.AnError)
}

func TestNewMailSender(t *testing.T) {
	publisher := &recordingPublisher{}

	sender, err := NewMailSender(SenderParams{Config: &config.Config{}, Logger: discardLogger(), Publisher: publisher})
	require.NoError(t, err)
	assert.IsType(t, &logOnlySender{}, sender)

	sender, err = NewMailSender(SenderParams{
		Config:    &config.Config{Mail: &config.MailConfig{Delivery: config.MailDeliveryQueue}},
		Logger:    discardLogger(),
		Publisher: publisher,
	})
	require.NoError(t, err)
	assert.IsType(t, &queuedSender{}, sender)

	sender, err = NewMailSender(SenderParams{
		Config:    &config.Config{Mail: &config.MailConfig{Delivery: config.MailDeliverySMTP, Host: "smtp.example.com"}},
		Logger:    discardLogger(),
		Publisher: publisher,
	})
	require.NoError(t, err)
	assert.IsType(t, &smtpSender{}, sender)

	_, err = NewMailSender(SenderParams{
		Config: &config.Config{Mail: &config.MailConfig{Delivery: "pigeon"}},
		Logger: discardLogger(),
	})
	assert.Error(t, err)
}

func TestNewWorkerMailSender(t *testing.T) {
	sender, err := NewWorkerMailSender(&config.Config{}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &logOnlySender{}, sender)

	sender, err = NewWorkerMailSender(&config.Config{
		Mail: &config.MailConfig{Delivery: config.MailDeliveryQueue, Host: "smtp.example.com"},
	}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &smtpSender{}, sender)
}
