package usecase

import (
	"context"

	"beacon/internal/domain/entity"
)

// MatchedUser pairs a user with their exact distance from the event location.
type MatchedUser struct {
	User       *entity.User
	DistanceKm float64
}

// MatcherUsecase decides which users should be reminded about an event. A
// user matches when they have a home coordinate, the event's category is in
// their subscribed set (an empty set subscribes to everything), and the
// distance from home to the event is within their radius, boundary inclusive.
// Users without a preference row match under the configured defaults.
type MatcherUsecase interface {
	// FindInterestedUsers returns every matching user with their distance,
	// ordered by user ID for deterministic processing.
	FindInterestedUsers(ctx context.Context, event *entity.Event) ([]*MatchedUser, error)
}
