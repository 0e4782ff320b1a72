// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the login identity of the platform. It is distinct from the
// business profile it is linked to; an account is linked to at most one profile.
type User struct {
	ID                uuid.UUID        // The Global Unique Identifier (GUID) for the user.
	Name              string           // Display name.
	Email             string           // Login identifier, unique and case-sensitive as stored.
	PasswordHash      string           // bcrypt hash of the password. Never serialised.
	Role              Role             // Role derived from the linked profile kind.
	PartnerSupplierID *uuid.UUID       // Link to a partner supplier profile, if any.
	LoveDecorationID  *uuid.UUID       // Link to a love decoration vendor profile, if any.
	PartnerSupplier   *PartnerSupplier // Loaded partner profile. Nil unless preloaded.
	LoveDecoration    *LoveDecoration  // Loaded vendor profile. Nil unless preloaded.
	CreatedAt         time.Time        // Timestamp of when this account was created.
	UpdatedAt         time.Time        // Timestamp of the last modification.
}

// Link returns the profile this account is linked to.
// The zero ProfileLink is returned for accounts without a profile.
func (u *User) Link() ProfileLink {
	switch {
	case u.PartnerSupplierID != nil:
		return ProfileLink{Kind: ProfileKindPartnerSupplier, ID: *u.PartnerSupplierID}
	case u.LoveDecorationID != nil:
		return ProfileLink{Kind: ProfileKindLoveDecoration, ID: *u.LoveDecorationID}
	default:
		return ProfileLink{}
	}
}

// ApplyLink sets the foreign key matching link.Kind and clears the others,
// so an account never points at two profiles.
func (u *User) ApplyLink(link ProfileLink) {
	u.PartnerSupplierID = nil
	u.LoveDecorationID = nil

	id := link.ID
	switch link.Kind {
	case ProfileKindPartnerSupplier:
		u.PartnerSupplierID = &id
	case ProfileKindLoveDecoration:
		u.LoveDecorationID = &id
	}
	u.Role = link.Kind.Role()
}
