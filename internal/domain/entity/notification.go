package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NotificationRecord is the idempotency marker and history entry for a single
// reminder sent to a user about an event. The persistence layer enforces at
// most one record per (UserID, EventID, Type) so that concurrent or repeated
// sweeps can never notify twice.
type NotificationRecord struct {
	ID      uuid.UUID       `json:"id"`       // The Global Unique Identifier (GUID) for the record.
	UserID  uuid.UUID       `json:"user_id"`  // The notified user.
	EventID uuid.UUID       `json:"event_id"` // The event the reminder refers to.
	Type    string          `json:"type"`     // Record type; the sweep writes "event_reminder".
	Payload json.RawMessage `json:"payload"`  // The message body that was published.
	SentAt  time.Time       `json:"sent_at"`  // Timestamp of when the record was persisted.
	IsRead  bool            `json:"is_read"`  // Whether the user has opened the notification.
}

// NotificationHistoryEntry is a notification record joined with event context
// for the per-user history listing.
type NotificationHistoryEntry struct {
	NotificationRecord
	EventTitle     string    `json:"event_title"`
	EventStartTime time.Time `json:"event_start_time"`
	DistanceKm     *float64  `json:"distance_km"` // Nil when the user has no home coordinate anymore.
}
