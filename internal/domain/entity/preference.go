package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreference controls which event reminders a user receives.
// It is replaced wholesale on update, never patched incrementally.
//
// An empty CategoryIDs set means the user subscribes to every category. This
// is a deliberate policy, not a missing value: new users get reminders for
// all nearby events until they narrow the set.
type NotificationPreference struct {
	UserID      uuid.UUID   `json:"user_id"`      // The owning user.
	RadiusKm    float64     `json:"radius_km"`    // Positive reminder radius in kilometers.
	CategoryIDs []uuid.UUID `json:"category_ids"` // Subscribed categories; empty means all.
	UpdatedAt   time.Time   `json:"updated_at"`   // Timestamp of the last replacement.
}

// SubscribesTo reports whether the preference covers the given category.
func (p *NotificationPreference) SubscribesTo(categoryID uuid.UUID) bool {
	if len(p.CategoryIDs) == 0 {
		return true
	}
	for _, id := range p.CategoryIDs {
		if id == categoryID {
			return true
		}
	}

	return false
}
