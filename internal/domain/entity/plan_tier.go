// Package entity contains the core business objects of the project.
package entity

// PlanTier is the internal label of a subscription plan.
type PlanTier string

const (
	// PlanTierBasic is the entry plan.
	PlanTierBasic PlanTier = "BASIC"
	// PlanTierPro adds highlighted listings.
	PlanTierPro PlanTier = "PRO"
	// PlanTierPremium is the top plan.
	PlanTierPremium PlanTier = "PREMIUM"
	// PlanTierUnknown is stored when the billed amount matches no known plan.
	PlanTierUnknown PlanTier = "UNKNOWN"
)

// Monthly prices in cents, as configured in the Stripe dashboard.
const (
	planAmountBasic   int64 = 4990
	planAmountPro     int64 = 9990
	planAmountPremium int64 = 19990
)

// String returns the string representation of the PlanTier.
func (p PlanTier) String() string {
	return string(p)
}

// PlanTierFromAmount maps a Stripe plan amount (in cents) to its tier.
func PlanTierFromAmount(amount int64) PlanTier {
	switch amount {
	case planAmountBasic:
		return PlanTierBasic
	case planAmountPro:
		return PlanTierPro
	case planAmountPremium:
		return PlanTierPremium
	default:
		return PlanTierUnknown
	}
}
