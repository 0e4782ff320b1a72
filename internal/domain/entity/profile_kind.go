// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// ProfileKind names the kind of business profile a user account can be linked to.
type ProfileKind string

const (
	// ProfileKindPartnerSupplier links the account to a partner supplier.
	ProfileKindPartnerSupplier ProfileKind = "partner_supplier"
	// ProfileKindLoveDecoration links the account to a love decoration vendor.
	ProfileKindLoveDecoration ProfileKind = "love_decoration"
)

// String returns the string representation of the ProfileKind.
func (k ProfileKind) String() string {
	return string(k)
}

// IsValid checks if the ProfileKind is a valid value.
func (k ProfileKind) IsValid() bool {
	switch k {
	case ProfileKindPartnerSupplier, ProfileKindLoveDecoration:
		return true
	default:
		return false
	}
}

// Role returns the account role granted by this profile kind.
func (k ProfileKind) Role() Role {
	switch k {
	case ProfileKindPartnerSupplier:
		return RolePartner
	case ProfileKindLoveDecoration:
		return RoleDecorator
	default:
		return ""
	}
}

// ProfileLink identifies the single profile a user account is attached to.
type ProfileLink struct {
	Kind ProfileKind
	ID   uuid.UUID
}

// IsZero reports whether the link points at nothing.
func (l ProfileLink) IsZero() bool {
	return l.Kind == "" && l.ID == uuid.Nil
}

// IsValid reports whether the link names a known kind and a concrete profile id.
func (l ProfileLink) IsValid() bool {
	return l.Kind.IsValid() && l.ID != uuid.Nil
}
