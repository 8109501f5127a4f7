package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/errors"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

type eventService struct {
	eventRepo    repository.EventRepository
	categoryRepo repository.CategoryRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

// NewEventService creates a new event service instance
func NewEventService(
	eventRepo repository.EventRepository,
	categoryRepo repository.CategoryRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.EventUsecase {
	return &eventService{
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateEvent persists a new event and announces it on the message channel.
func (s *eventService) CreateEvent(ctx context.Context, creatorID uuid.UUID, input *usecase.CreateEventInput) (*entity.Event, error) {
	coordinate, err := entity.NewCoordinate(input.Latitude, input.Longitude)
	if err != nil {
		return nil, domainerrors.ErrInvalidCoordinate.WrapMessage(err.Error())
	}
	if err := validateTimeWindow(input.StartTime, input.EndTime); err != nil {
		return nil, err
	}
	if input.MaxParticipants != nil && *input.MaxParticipants <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("max participants must be positive")
	}

	if _, err := s.categoryRepo.FindCategoryByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, fmt.Errorf("failed to check category: %w", err)
	}

	event := &entity.Event{
		Title:           input.Title,
		Description:     input.Description,
		Coordinate:      coordinate,
		Address:         input.Address,
		CategoryID:      input.CategoryID,
		CreatorID:       creatorID,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		MaxParticipants: input.MaxParticipants,
	}

	if err := s.eventRepo.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	// Announce asynchronously from the caller's perspective: a publish
	// failure never undoes a created event.
	if err := s.publisher.PublishEventCreated(ctx, &service.EventCreatedMessage{
		EventID:   event.ID.String(),
		Title:     event.Title,
		Latitude:  event.Coordinate.Latitude,
		Longitude: event.Coordinate.Longitude,
		StartTime: event.StartTime,
	}); err != nil {
		s.logger.Error("Failed to announce event creation",
			slog.String("event_id", event.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return event, nil
}

// GetEvent retrieves a single event.
func (s *eventService) GetEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, fmt.Errorf("failed to find event: %w", err)
	}

	return event, nil
}

// UpdateEvent applies a partial update after verifying ownership.
func (s *eventService) UpdateEvent(ctx context.Context, userID, eventID uuid.UUID, input *usecase.UpdateEventInput) (*entity.Event, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.CreatorID != userID {
		return nil, domainerrors.ErrEventOwnershipViolation
	}

	if err := s.applyEventUpdates(ctx, event, input); err != nil {
		return nil, err
	}

	if err := s.eventRepo.UpdateEvent(ctx, event); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

// DeleteEvent removes an event after verifying ownership.
func (s *eventService) DeleteEvent(ctx context.Context, userID, eventID uuid.UUID) error {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.CreatorID != userID {
		return domainerrors.ErrEventOwnershipViolation
	}

	if err := s.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrEventNotFound
		}

		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

// RegisterParticipant registers a user, waitlisting them when the event is full.
func (s *eventService) RegisterParticipant(ctx context.Context, eventID, userID uuid.UUID) (*entity.EventParticipant, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !s.now().UTC().Before(event.StartTime) {
		return nil, domainerrors.ErrEventTimeWindow.WrapMessage("registration closes at event start")
	}

	status := entity.ParticipantStatusRegistered
	if event.MaxParticipants != nil {
		count, err := s.eventRepo.CountRegisteredParticipants(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("failed to count participants: %w", err)
		}
		if count >= int64(*event.MaxParticipants) {
			status = entity.ParticipantStatusWaitlisted
		}
	}

	participant := &entity.EventParticipant{
		EventID: eventID,
		UserID:  userID,
		Status:  status,
	}

	if err := s.eventRepo.CreateParticipant(ctx, participant); err != nil {
		if errors.Is(err, repository.ErrDuplicateParticipant) {
			return nil, domainerrors.ErrAlreadyRegistered
		}

		return nil, fmt.Errorf("failed to register participant: %w", err)
	}

	return participant, nil
}

// UnregisterParticipant removes a user's registration.
func (s *eventService) UnregisterParticipant(ctx context.Context, eventID, userID uuid.UUID) error {
	if err := s.eventRepo.DeleteParticipant(ctx, eventID, userID); err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("registration not found")
		}

		return fmt.Errorf("failed to unregister participant: %w", err)
	}

	return nil
}

// ListCategories retrieves every event category.
func (s *eventService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.FindAllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// applyEventUpdates merges the partial input into the event and re-validates
// the touched fields.
func (s *eventService) applyEventUpdates(ctx context.Context, event *entity.Event, input *usecase.UpdateEventInput) error {
	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Latitude != nil || input.Longitude != nil {
		latitude := event.Coordinate.Latitude
		longitude := event.Coordinate.Longitude
		if input.Latitude != nil {
			latitude = *input.Latitude
		}
		if input.Longitude != nil {
			longitude = *input.Longitude
		}
		coordinate, err := entity.NewCoordinate(latitude, longitude)
		if err != nil {
			return domainerrors.ErrInvalidCoordinate.WrapMessage(err.Error())
		}
		event.Coordinate = coordinate
	}
	if input.Address != nil {
		event.Address = *input.Address
	}
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return fmt.Errorf("failed to check category: %w", err)
		}
		event.CategoryID = *input.CategoryID
	}
	if input.StartTime != nil {
		event.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		event.EndTime = *input.EndTime
	}
	if input.MaxParticipants != nil {
		if *input.MaxParticipants <= 0 {
			return domainerrors.ErrValidationFailed.WrapMessage("max participants must be positive")
		}
		event.MaxParticipants = input.MaxParticipants
	}

	return validateTimeWindow(event.StartTime, event.EndTime)
}

func validateTimeWindow(start, end time.Time) error {
	if !start.Before(end) {
		return domainerrors.ErrEventTimeWindow
	}

	return nil
}
