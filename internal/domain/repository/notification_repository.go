package repository

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification record is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification-record
// database operations.
type NotificationRepository interface {
	// InsertNotificationIfAbsent persists the record unless one already exists
	// for the same (user, event, type) key. It reports whether a row was
	// actually inserted. The uniqueness constraint lives in the database, so
	// the check-and-insert is atomic under concurrent sweeps.
	InsertNotificationIfAbsent(ctx context.Context, record *entity.NotificationRecord) (bool, error)

	// FindNotificationsByUser retrieves the user's notification history joined
	// with event context, newest first.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.NotificationHistoryEntry, error)

	// MarkNotificationRead flags a record as read. The record must belong to
	// the given user.
	MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error
}
