package repository

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for preference persistence.
var (
	// ErrPreferenceNotFound is returned when a user has no notification preference.
	ErrPreferenceNotFound = errors.New("notification preference not found")
)

// PreferenceRepository defines the interface for notification-preference
// database operations. Preferences are replaced wholesale: the use case layer
// runs delete-then-create inside one transaction via the TransactionManager.
type PreferenceRepository interface {
	// FindPreferenceByUser retrieves the preference owned by the user.
	FindPreferenceByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error)

	// CreatePreference persists a preference with its category set.
	CreatePreference(ctx context.Context, preference *entity.NotificationPreference) error

	// DeletePreference removes the user's preference and its category set.
	// Deleting an absent preference is not an error.
	DeletePreference(ctx context.Context, userID uuid.UUID) error
}
