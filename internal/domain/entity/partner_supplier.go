// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PartnerStatus is the moderation state of a partner supplier.
type PartnerStatus string

const (
	// PartnerStatusPending is the initial state after registration.
	PartnerStatusPending PartnerStatus = "PENDING"
	// PartnerStatusApproved makes the partner visible on the marketplace.
	PartnerStatusApproved PartnerStatus = "APPROVED"
	// PartnerStatusRejected closes the registration.
	PartnerStatusRejected PartnerStatus = "REJECTED"
)

// String returns the string representation of the PartnerStatus.
func (s PartnerStatus) String() string {
	return string(s)
}

// IsValid checks if the PartnerStatus is a valid value.
func (s PartnerStatus) IsValid() bool {
	switch s {
	case PartnerStatusPending, PartnerStatusApproved, PartnerStatusRejected:
		return true
	default:
		return false
	}
}

// PartnerSupplier is a business offering services for events (buffet, sound, venue...).
// Subscriptions are billed per partner supplier.
type PartnerSupplier struct {
	ID           uuid.UUID     // The Global Unique Identifier (GUID) for the profile.
	TradeName    string        // Name shown to customers.
	CompanyName  string        // Registered company name.
	Document     string        // Tax document (CNPJ/CPF), unique.
	Contact      string        // Phone or WhatsApp contact.
	Instagram    string        // Instagram handle.
	ProfessionID *uuid.UUID    // Optional profession category.
	Status       PartnerStatus // Moderation state.
	Address      *Address      // Embedded address owned by this profile.
	CreatedAt    time.Time     // Timestamp of when this profile was created.
	UpdatedAt    time.Time     // Timestamp of the last modification.
}
