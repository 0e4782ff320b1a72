// Package payment integrates the Stripe API.
package payment

import (
	"context"

	"eventhub/config"
	"eventhub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/customer"
)

// stripeCustomerDirectory resolves customers through the Stripe customers API.
type stripeCustomerDirectory struct {
	client *customer.Client
}

// NewStripeCustomerDirectory reads the secret key once at construction.
func NewStripeCustomerDirectory(cfg *config.Config) (service.CustomerDirectory, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	return newStripeCustomerDirectory(stripe.GetBackend(stripe.APIBackend), cfg.Stripe.SecretKey), nil
}

func newStripeCustomerDirectory(backend stripe.Backend, key string) *stripeCustomerDirectory {
	return &stripeCustomerDirectory{
		client: &customer.Client{B: backend, Key: key},
	}
}

// RetrieveCustomer fetches a customer. Deleted customers are returned with Deleted set.
func (d *stripeCustomerDirectory) RetrieveCustomer(ctx context.Context, customerID string) (*service.PaymentCustomer, error) {
	params := &stripe.CustomerParams{}
	params.Context = ctx

	c, err := d.client.Get(customerID, params)
	if err != nil {
		return nil, errors.Wrapf(err, "retrieve stripe customer %s", customerID)
	}

	return &service.PaymentCustomer{
		ID:      c.ID,
		Email:   c.Email,
		Deleted: c.Deleted,
	}, nil
}
