package usecase

import (
	"context"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateEventInput carries the fields of a new event.
type CreateEventInput struct {
	Title           string
	Description     string
	Latitude        float64
	Longitude       float64
	Address         string
	CategoryID      uuid.UUID
	StartTime       time.Time
	EndTime         time.Time
	MaxParticipants *int
}

// UpdateEventInput carries a partial event update; nil fields are left unchanged.
type UpdateEventInput struct {
	Title           *string
	Description     *string
	Latitude        *float64
	Longitude       *float64
	Address         *string
	CategoryID      *uuid.UUID
	StartTime       *time.Time
	EndTime         *time.Time
	MaxParticipants *int
}

// EventUsecase defines the interface for event management use cases
type EventUsecase interface {
	// CreateEvent persists a new event owned by creatorID and announces it on
	// the message channel. A failed announcement does not fail the creation.
	CreateEvent(ctx context.Context, creatorID uuid.UUID, input *CreateEventInput) (*entity.Event, error)

	// GetEvent retrieves a single event.
	GetEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error)

	// UpdateEvent applies a partial update. Only the creator may update.
	UpdateEvent(ctx context.Context, userID, eventID uuid.UUID, input *UpdateEventInput) (*entity.Event, error)

	// DeleteEvent removes an event. Only the creator may delete.
	DeleteEvent(ctx context.Context, userID, eventID uuid.UUID) error

	// RegisterParticipant registers a user on an event. When the event is at
	// capacity the registration lands on the waitlist instead of failing.
	RegisterParticipant(ctx context.Context, eventID, userID uuid.UUID) (*entity.EventParticipant, error)

	// UnregisterParticipant removes a user's registration.
	UnregisterParticipant(ctx context.Context, eventID, userID uuid.UUID) error

	// ListCategories retrieves every event category.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
