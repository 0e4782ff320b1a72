package service

import "encoding/json"

// PaymentEvent is a verified webhook event from the payment processor.
type PaymentEvent struct {
	ID     string
	Type   string
	Object json.RawMessage // raw data.object of the event
}

// WebhookVerifier authenticates payment processor webhook deliveries.
type WebhookVerifier interface {
	// Verify checks the signature header against the raw payload and decodes the event.
	Verify(payload []byte, signatureHeader string) (*PaymentEvent, error)
}
