package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. Authentication lives outside this service;
// only identity, locale and the optional home location matter here.
type User struct {
	ID                uuid.UUID               `json:"id"`                 // The Global Unique Identifier (GUID) for the user.
	Email             string                  `json:"email"`              // Primary contact email.
	Name              string                  `json:"name"`               // Display name.
	PreferredLanguage string                  `json:"preferred_language"` // "en" or "rw"; selects category names in messages.
	HomeCoordinate    *Coordinate             `json:"home_coordinate"`    // Optional home location; nil until the user sets one.
	Preference        *NotificationPreference `json:"preference"`         // Zero-or-one notification preference.
	CreatedAt         time.Time               `json:"created_at"`         // Timestamp of when this account was created.
	UpdatedAt         time.Time               `json:"updated_at"`         // Timestamp of the last modification.
}
