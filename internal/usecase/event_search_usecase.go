// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"context"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// SearchEventsInput carries the parameters of an event search. Center and
// RadiusKm travel together: both set means a proximity search ordered by
// distance, both nil means a plain listing ordered by start time. Setting
// only one of them is a validation error.
type SearchEventsInput struct {
	Center     *entity.Coordinate
	RadiusKm   *float64
	CategoryID *uuid.UUID
	StartAfter *time.Time
	EndBefore  *time.Time
	Limit      int
	Offset     int
}

// EventSearchUsecase defines the interface for event discovery use cases
type EventSearchUsecase interface {
	// SearchEvents returns events matching the input. For proximity searches
	// the results carry the exact distance from the center and are ordered by
	// ascending distance, event ID breaking ties; containment at exactly
	// RadiusKm is inclusive. For plain listings DistanceKm is zero and the
	// order is ascending start time.
	SearchEvents(ctx context.Context, input *SearchEventsInput) ([]*entity.EventWithDistance, error)
}
