package service

import "context"

// Mail is a plain-text message addressed to one recipient.
type Mail struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// MailSender delivers transactional mail.
type MailSender interface {
	Send(ctx context.Context, mail *Mail) error
}
