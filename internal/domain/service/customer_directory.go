package service

import "context"

// PaymentCustomer is the subset of a payment processor customer record used for reconciliation.
type PaymentCustomer struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Deleted bool   `json:"deleted"`
}

// CustomerDirectory resolves payment processor customer ids.
type CustomerDirectory interface {
	// RetrieveCustomer fetches a customer by its processor id.
	RetrieveCustomer(ctx context.Context, customerID string) (*PaymentCustomer, error)
}
