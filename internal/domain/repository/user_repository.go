package repository

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// FindUserByID retrieves a user by their unique ID, with the notification
	// preference attached when one exists.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUsersWithPreferences retrieves every user who has a home coordinate
	// set, each with their notification preference attached when one exists.
	// Users without a home coordinate can never match and are not returned.
	FindUsersWithPreferences(ctx context.Context) ([]*entity.User, error)

	// UpdateHomeCoordinate sets the user's home location.
	UpdateHomeCoordinate(ctx context.Context, userID uuid.UUID, coordinate entity.Coordinate) error
}
