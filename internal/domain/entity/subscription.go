// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription mirrors the Stripe subscription of a partner supplier.
// There is at most one row per partner; webhook events overwrite it in place.
type Subscription struct {
	ID                 uuid.UUID `json:"id"`                   // The Global Unique Identifier (GUID) for the row.
	PartnerSupplierID  uuid.UUID `json:"partner_supplier_id"`  // Owning partner, unique.
	StripeCustomerID   string    `json:"stripe_customer_id"`   // Stripe customer id (cus_...).
	SubscriptionID     string    `json:"subscription_id"`      // Stripe subscription id (sub_...).
	SubscriptionStatus string    `json:"subscription_status"`  // Upper-cased Stripe status, e.g. "ACTIVE".
	PlanType           PlanTier  `json:"plan_type"`            // Tier derived from the plan amount.
	CurrentPeriodEnd   time.Time `json:"current_period_end"`   // End of the paid period (UTC).
	CancelAtPeriodEnd  bool      `json:"cancel_at_period_end"` // Whether the subscription ends with the period.
	CreatedAt          time.Time `json:"created_at"`           // Timestamp of when this row was created.
	UpdatedAt          time.Time `json:"updated_at"`           // Timestamp of the last modification.
}
