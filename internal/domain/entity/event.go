package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a discoverable event with a fixed location and time window.
// Only the creator may modify or delete it.
type Event struct {
	ID              uuid.UUID  `json:"id"`               // The Global Unique Identifier (GUID) for the event.
	Title           string     `json:"title"`            // Short human-readable title.
	Description     string     `json:"description"`      // Longer free-form description.
	Coordinate      Coordinate `json:"coordinate"`       // The event location. Always present.
	Address         string     `json:"address"`          // Human-readable street address.
	CategoryID      uuid.UUID  `json:"category_id"`      // The category this event belongs to.
	CreatorID       uuid.UUID  `json:"creator_id"`       // The user who created the event.
	StartTime       time.Time  `json:"start_time"`       // When the event starts. Always before EndTime.
	EndTime         time.Time  `json:"end_time"`         // When the event ends.
	MaxParticipants *int       `json:"max_participants"` // Capacity limit; nil means unlimited.
	CreatedAt       time.Time  `json:"created_at"`       // Timestamp of when this record was created.
	UpdatedAt       time.Time  `json:"updated_at"`       // Timestamp of the last modification.
}

// EventWithDistance bundles an event with its derived distance from a query
// point. Distance is computed per query and never stored.
type EventWithDistance struct {
	Event
	DistanceKm float64 `json:"distance_km"`
}

// ParticipantStatus is the registration state of a user on an event.
type ParticipantStatus string

const (
	// ParticipantStatusRegistered means the user holds a confirmed spot.
	ParticipantStatusRegistered ParticipantStatus = "registered"
	// ParticipantStatusWaitlisted means the event was full at registration time.
	ParticipantStatusWaitlisted ParticipantStatus = "waitlisted"
)

// EventParticipant represents a user's registration on an event.
type EventParticipant struct {
	EventID      uuid.UUID         `json:"event_id"`
	UserID       uuid.UUID         `json:"user_id"`
	Status       ParticipantStatus `json:"status"`
	RegisteredAt time.Time         `json:"registered_at"`
}
