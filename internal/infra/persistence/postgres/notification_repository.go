// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// InsertNotificationIfAbsent persists the record unless one already exists for
// the same (user, event, type) key. The ON CONFLICT DO NOTHING clause leans on
// the table's composite unique index, so concurrent sweeps cannot both insert;
// RowsAffected tells the caller whether this attempt won.
func (repo *notificationRepository) InsertNotificationIfAbsent(ctx context.Context, record *entity.NotificationRecord) (bool, error) {
	recordM := fromNotificationDomain(record)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "event_id"},
				{Name: "type"},
			},
			DoNothing: true,
		}).
		Create(recordM)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.ErrEventNotFound.WrapMessage("invalid user or event reference")
		}
		if isNotNullConstraintViolation(result.Error) {
			return false, domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to insert notification")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	// Update the entity with generated values
	record.ID = recordM.ID
	record.SentAt = recordM.SentAt

	return true, nil
}

// FindNotificationsByUser retrieves the user's notification history joined
// with event context, newest first.
func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.NotificationHistoryEntry, error) {
	var notificationModels []*model.EventNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sent_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	if len(notificationModels) == 0 {
		return []*entity.NotificationHistoryEntry{}, nil
	}

	eventIDs := make([]uuid.UUID, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		eventIDs = append(eventIDs, notificationM.EventID)
	}

	var eventModels []*model.EventModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", eventIDs).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load events for notification history")
	}

	eventsByID := make(map[uuid.UUID]*model.EventModel, len(eventModels))
	for _, eventM := range eventModels {
		eventsByID[eventM.ID] = eventM
	}

	entries := make([]*entity.NotificationHistoryEntry, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		entry := &entity.NotificationHistoryEntry{
			NotificationRecord: *toNotificationDomain(notificationM),
		}
		if eventM, ok := eventsByID[notificationM.EventID]; ok {
			entry.EventTitle = eventM.Title
			entry.EventStartTime = eventM.StartTime
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// MarkNotificationRead flags a record as read. The user ID guard keeps users
// from touching records that are not theirs.
func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventNotificationModel{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM EventNotificationModel to a domain NotificationRecord entity.
func toNotificationDomain(data *model.EventNotificationModel) *entity.NotificationRecord {
	if data == nil {
		return nil
	}

	return &entity.NotificationRecord{
		ID:      data.ID,
		UserID:  data.UserID,
		EventID: data.EventID,
		Type:    data.Type,
		Payload: data.Payload,
		SentAt:  data.SentAt,
		IsRead:  data.IsRead,
	}
}

// fromNotificationDomain converts a domain NotificationRecord entity to its GORM model.
func fromNotificationDomain(data *entity.NotificationRecord) *model.EventNotificationModel {
	if data == nil {
		return nil
	}

	return &model.EventNotificationModel{
		ID:      data.ID,
		UserID:  data.UserID,
		EventID: data.EventID,
		Type:    data.Type,
		Payload: data.Payload,
		SentAt:  data.SentAt,
		IsRead:  data.IsRead,
	}
}
