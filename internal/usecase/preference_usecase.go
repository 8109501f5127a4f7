package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdatePreferenceInput carries a full replacement preference. There is no
// partial update: the stored preference becomes exactly this.
type UpdatePreferenceInput struct {
	RadiusKm    float64
	CategoryIDs []uuid.UUID
}

// PreferenceUsecase defines the interface for notification preference use cases
type PreferenceUsecase interface {
	// GetPreference returns the user's stored preference, or the configured
	// defaults (default radius, all categories) when none is stored.
	GetPreference(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error)

	// UpdatePreference replaces the user's preference wholesale inside one
	// transaction, so readers never observe a half-replaced category set.
	UpdatePreference(ctx context.Context, userID uuid.UUID, input *UpdatePreferenceInput) (*entity.NotificationPreference, error)

	// UpdateHomeLocation sets the user's home coordinate.
	UpdateHomeLocation(ctx context.Context, userID uuid.UUID, coordinate entity.Coordinate) error
}
