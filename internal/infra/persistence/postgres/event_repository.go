// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// CreateEvent persists a new event.
func (repo *eventRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category or creator reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required event information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	// Update the entity with generated values
	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// FindEventByID retrieves an event by its unique ID.
func (repo *eventRepository) FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	return toEventDomain(&eventM), nil
}

// UpdateEvent updates an existing event record.
func (repo *eventRepository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", event.ID).
		Updates(map[string]any{
			"title":            eventM.Title,
			"description":      eventM.Description,
			"latitude":         eventM.Latitude,
			"longitude":        eventM.Longitude,
			"address":          eventM.Address,
			"category_id":      eventM.CategoryID,
			"start_time":       eventM.StartTime,
			"end_time":         eventM.EndTime,
			"max_participants": eventM.MaxParticipants,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category reference")
		}

		return errors.Wrap(result.Error, "failed to update event")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// DeleteEvent removes an event by its ID.
func (repo *eventRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EventModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete event")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// FindEvents retrieves events matching the filter with offset pagination.
func (repo *eventRepository) FindEvents(ctx context.Context, filter repository.EventFilter, limit, offset int) ([]*entity.Event, error) {
	var eventModels []*model.EventModel

	query := applyEventFilter(repo.db.WithContext(ctx), filter)

	if err := query.
		Order("start_time ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find events")
	}

	return toEventDomainSlice(eventModels), nil
}

// FindAllEvents retrieves every event matching the filter, unpaginated.
func (repo *eventRepository) FindAllEvents(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, error) {
	var eventModels []*model.EventModel

	query := applyEventFilter(repo.db.WithContext(ctx), filter)

	if err := query.
		Order("start_time ASC, id ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all events")
	}

	return toEventDomainSlice(eventModels), nil
}

// FindEventsStartingBetween retrieves events whose start time falls in [from, to).
func (repo *eventRepository) FindEventsStartingBetween(ctx context.Context, from, to time.Time) ([]*entity.Event, error) {
	var eventModels []*model.EventModel

	if err := repo.db.WithContext(ctx).
		Where("start_time >= ? AND start_time < ?", from, to).
		Order("start_time ASC, id ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find events starting between")
	}

	return toEventDomainSlice(eventModels), nil
}

// CountRegisteredParticipants returns the number of confirmed registrations for an event.
func (repo *eventRepository) CountRegisteredParticipants(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.EventParticipantModel{}).
		Where("event_id = ? AND status = ?", eventID, string(entity.ParticipantStatusRegistered)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count registered participants")
	}

	return count, nil
}

// CreateParticipant persists a registration.
func (repo *eventRepository) CreateParticipant(ctx context.Context, participant *entity.EventParticipant) error {
	participantM := fromParticipantDomain(participant)

	if err := repo.db.WithContext(ctx).Create(participantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateParticipant
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEventNotFound.WrapMessage("invalid event or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create participant")
	}

	participant.RegisteredAt = participantM.RegisteredAt

	return nil
}

// DeleteParticipant removes a registration.
func (repo *eventRepository) DeleteParticipant(ctx context.Context, eventID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&model.EventParticipantModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete participant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrParticipantNotFound
	}

	return nil
}

// applyEventFilter translates the optional filter predicates into WHERE clauses.
func applyEventFilter(query *gorm.DB, filter repository.EventFilter) *gorm.DB {
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.StartAfter != nil {
		query = query.Where("start_time >= ?", *filter.StartAfter)
	}
	if filter.EndBefore != nil {
		query = query.Where("end_time <= ?", *filter.EndBefore)
	}

	return query
}

// --- Mapper Functions ---

// toEventDomain converts a GORM EventModel to a domain Event entity.
func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Coordinate: entity.Coordinate{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		Address:         data.Address,
		CategoryID:      data.CategoryID,
		CreatorID:       data.CreatorID,
		StartTime:       data.StartTime,
		EndTime:         data.EndTime,
		MaxParticipants: data.MaxParticipants,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toEventDomainSlice(data []*model.EventModel) []*entity.Event {
	events := make([]*entity.Event, 0, len(data))
	for _, eventM := range data {
		events = append(events, toEventDomain(eventM))
	}

	return events
}

// fromEventDomain converts a domain Event entity to a GORM EventModel.
func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		Latitude:        data.Coordinate.Latitude,
		Longitude:       data.Coordinate.Longitude,
		Address:         data.Address,
		CategoryID:      data.CategoryID,
		CreatorID:       data.CreatorID,
		StartTime:       data.StartTime,
		EndTime:         data.EndTime,
		MaxParticipants: data.MaxParticipants,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromParticipantDomain converts a domain EventParticipant to its GORM model.
func fromParticipantDomain(data *entity.EventParticipant) *model.EventParticipantModel {
	if data == nil {
		return nil
	}

	return &model.EventParticipantModel{
		EventID:      data.EventID,
		UserID:       data.UserID,
		Status:       string(data.Status),
		RegisteredAt: data.RegisteredAt,
	}
}
