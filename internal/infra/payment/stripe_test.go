package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventhub/config"
	"eventhub/internal/domain/constants"
	domainerrors "eventhub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) stripe.Backend {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(server.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
}

func TestStripeCustomerDirectory_RetrieveCustomer(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/customers/cus_123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cus_123","object":"customer","email":"partner@example.com"}`))
	})

	directory := newStripeCustomerDirectory(backend, "sk_test_123")
	got, err := directory.RetrieveCustomer(context.Background(), "cus_123")

	require.NoError(t, err)
	assert.Equal(t, "cus_123", got.ID)
	assert.Equal(t, "partner@example.com", got.Email)
	assert.False(t, got.Deleted)
}

func TestStripeCustomerDirectory_APIError(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such customer: 'cus_missing'"}}`))
	})

	directory := newStripeCustomerDirectory(backend, "sk_test_123")
	got, err := directory.RetrieveCustomer(context.Background(), "cus_missing")

	assert.Nil(t, got)
	assert.ErrorContains(t, err, "retrieve stripe customer cus_missing")
}

func TestNewStripeCustomerDirectory_RequiresKey(t *testing.T) {
	_, err := NewStripeCustomerDirectory(&config.Config{})
	assert.Error(t, err)
}

const testWebhookSecret = "whsec_test_secret"

func TestStripeWebhookVerifier_Verify(t *testing.T) {
	verifier, err := NewStripeWebhookVerifier(&config.Config{Stripe: &config.StripeConfig{WebhookSecret: testWebhookSecret}})
	require.NoError(t, err)

	payload := []byte(`{"id":"evt_1","object":"event","type":"customer.subscription.updated",` +
		`"data":{"object":{"id":"sub_1","customer":"cus_1","status":"active"}}}`)
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})

	event, err := verifier.Verify(signed.Payload, signed.Header)
	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, constants.StripeEventSubscriptionUpdated, event.Type)
	assert.JSONEq(t, `{"id":"sub_1","customer":"cus_1","status":"active"}`, string(event.Object))
}

func TestStripeWebhookVerifier_RejectsBadSignature(t *testing.T) {
	verifier, err := NewStripeWebhookVerifier(&config.Config{Stripe: &config.StripeConfig{WebhookSecret: testWebhookSecret}})
	require.NoError(t, err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(`{"id":"evt_1","object":"event"}`),
		Secret:    "whsec_other",
		Timestamp: time.Now(),
	})

	event, err := verifier.Verify(signed.Payload, signed.Header)
	assert.Nil(t, event)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidWebhookSignature))
}
