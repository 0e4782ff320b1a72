// Package constants holds configuration values shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Message attribute keys attached to published mail jobs.
const (
	AttrEventType = "event_type"
	AttrRequestID = "request_id"

	EventTypeMail = "mail"
)

// Stripe subscription event types handled by the reconciler.
const (
	StripeEventSubscriptionCreated = "customer.subscription.created"
	StripeEventSubscriptionUpdated = "customer.subscription.updated"
	StripeEventSubscriptionDeleted = "customer.subscription.deleted"
)
