// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a postal address embedded in a vendor or partner profile.
// It has no lifecycle of its own: it is created, replaced and read through its owner.
type Address struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the address.
	State      string    // Federative unit, e.g. "SP".
	City       string    // City name.
	District   string    // Neighbourhood / district.
	Street     string    // Street name.
	Complement string    // Free-form complement (apartment, block). May be empty.
	Number     string    // House or building number as written by the owner.
	ZipCode    string    // Postal code.
	CreatedAt  time.Time // Timestamp of when this address was created.
	UpdatedAt  time.Time // Timestamp of the last modification.
}

// ReplaceWith overwrites every addressable field with the values of other.
// Identity and timestamps are kept.
func (a *Address) ReplaceWith(other *Address) {
	a.State = other.State
	a.City = other.City
	a.District = other.District
	a.Street = other.Street
	a.Complement = other.Complement
	a.Number = other.Number
	a.ZipCode = other.ZipCode
}
