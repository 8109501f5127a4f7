package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for notification history use cases
type NotificationUsecase interface {
	// GetNotificationHistory retrieves the user's notifications joined with
	// event context, newest first.
	GetNotificationHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.NotificationHistoryEntry, error)

	// MarkRead flags one of the user's notifications as read.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
}
