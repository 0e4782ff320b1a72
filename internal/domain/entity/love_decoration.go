// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoveDecoration is the vendor profile of a "love decoration" supplier:
// a decorator offering themed setups for proposals, anniversaries and dates.
type LoveDecoration struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the profile.
	Name      string    // Public business name.
	Contact   string    // Phone or WhatsApp contact.
	Instagram string    // Instagram handle.
	TikTok    string    // TikTok handle, empty when the vendor has none.
	Address   *Address  // Embedded address owned by this profile.
	CreatedAt time.Time // Timestamp of when this profile was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
