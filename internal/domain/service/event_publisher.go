package service

import (
	"context"
)

// MailEvent is a mail job handed to the mail worker.
type MailEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Mail      Mail   `json:"mail"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMailEvent publishes a mail job for async delivery
	PublishMailEvent(ctx context.Context, event *MailEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
