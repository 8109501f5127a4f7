// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for event persistence.
var (
	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = errors.New("event not found")
	// ErrDuplicateParticipant is returned when a user registers twice for the same event.
	ErrDuplicateParticipant = errors.New("participant already registered")
	// ErrParticipantNotFound is returned when unregistering a user who never registered.
	ErrParticipantNotFound = errors.New("participant not found")
)

// EventFilter carries the optional non-spatial predicates of an event query.
// All set fields are combined with AND.
type EventFilter struct {
	CategoryID *uuid.UUID // Restrict to one category.
	StartAfter *time.Time // Events starting at or after this instant.
	EndBefore  *time.Time // Events ending at or before this instant.
}

// EventRepository defines the interface for event-related database operations.
type EventRepository interface {
	// CreateEvent persists a new event.
	CreateEvent(ctx context.Context, event *entity.Event) error

	// FindEventByID retrieves an event by its unique ID.
	FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// UpdateEvent updates an existing event record.
	UpdateEvent(ctx context.Context, event *entity.Event) error

	// DeleteEvent removes an event by its ID.
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	// FindEvents retrieves events matching the filter, ordered by ascending
	// start time (event ID as tie-break) with offset pagination.
	FindEvents(ctx context.Context, filter EventFilter, limit, offset int) ([]*entity.Event, error)

	// FindAllEvents retrieves every event matching the filter, unpaginated.
	// Used by the in-memory spatial fallback, which prunes in application code.
	FindAllEvents(ctx context.Context, filter EventFilter) ([]*entity.Event, error)

	// FindEventsStartingBetween retrieves events whose start time falls in
	// [from, to). The notification sweep scans its lookahead window with this.
	FindEventsStartingBetween(ctx context.Context, from, to time.Time) ([]*entity.Event, error)

	// CountRegisteredParticipants returns the number of confirmed (non-waitlisted)
	// registrations for an event.
	CountRegisteredParticipants(ctx context.Context, eventID uuid.UUID) (int64, error)

	// CreateParticipant persists a registration.
	CreateParticipant(ctx context.Context, participant *entity.EventParticipant) error

	// DeleteParticipant removes a registration.
	DeleteParticipant(ctx context.Context, eventID, userID uuid.UUID) error
}
