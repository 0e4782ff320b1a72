// Package mail delivers transactional mail over SMTP, inline or through the mail worker.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/smtp"
	"strconv"
	"strings"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/service"

	"github.com/pkg/errors"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// smtpSender sends plain-text UTF-8 mail through one SMTP relay.
type smtpSender struct {
	addr     string
	auth     smtp.Auth
	from     string
	sendMail sendMailFunc
	logger   *slog.Logger
}

// NewSMTPSender builds a sender from the mail section. Auth is skipped without credentials.
func NewSMTPSender(cfg *config.MailConfig, logger *slog.Logger) (service.MailSender, error) {
	if cfg == nil || cfg.Host == "" {
		return nil, errors.New("smtp host must be provided")
	}

	from := cfg.From
	if from == "" {
		from = "no-reply@" + cfg.Host
	}

	var auth smtp.Auth
	if cfg.Username != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	port := cfg.Port
	if port == 0 {
		port = 587
	}

	return &smtpSender{
		addr:     cfg.Host + ":" + strconv.Itoa(port),
		auth:     auth,
		from:     from,
		sendMail: smtp.SendMail,
		logger:   logger,
	}, nil
}

func (s *smtpSender) Send(ctx context.Context, m *service.Mail) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	if err := s.sendMail(s.addr, s.auth, s.from, []string{m.To}, buildMessage(s.from, m)); err != nil {
		return errors.Wrapf(err, "smtp send via %s", s.addr)
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).InfoContext(ctx, "Mail sent",
		slog.String("to", m.To),
		slog.String("relay", s.addr),
	)

	return nil
}

func buildMessage(from string, m *service.Mail) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", m.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", m.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(m.Body)

	return []byte(b.String())
}
