package impl

import (
	"context"
	"testing"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	mockRepo "beacon/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_GetNotificationHistory(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns entries with default pagination", func(t *testing.T) {
		notificationRepo := mockRepo.NewMockNotificationRepository(t)
		service := NewNotificationService(notificationRepo)

		entries := []*entity.NotificationHistoryEntry{
			{
				NotificationRecord: entity.NotificationRecord{
					ID:     uuid.New(),
					UserID: userID,
					SentAt: time.Now().UTC(),
				},
				EventTitle: "Jazz night",
			},
		}

		notificationRepo.EXPECT().
			FindNotificationsByUser(ctx, userID, defaultSearchLimit, 0).
			Return(entries, nil)

		got, err := service.GetNotificationHistory(ctx, userID, 0, 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Jazz night", got[0].EventTitle)
	})

	t.Run("rejects negative offset", func(t *testing.T) {
		notificationRepo := mockRepo.NewMockNotificationRepository(t)
		service := NewNotificationService(notificationRepo)

		got, err := service.GetNotificationHistory(ctx, userID, 10, -1)
		require.Error(t, err)
		assert.Nil(t, got)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrInvalidPagination.ErrorCode(), appErr.ErrorCode())
	})

	t.Run("clamps oversized limit", func(t *testing.T) {
		notificationRepo := mockRepo.NewMockNotificationRepository(t)
		service := NewNotificationService(notificationRepo)

		notificationRepo.EXPECT().
			FindNotificationsByUser(ctx, userID, maxSearchLimit, 0).
			Return([]*entity.NotificationHistoryEntry{}, nil)

		got, err := service.GetNotificationHistory(ctx, userID, 500, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	t.Run("success", func(t *testing.T) {
		notificationRepo := mockRepo.NewMockNotificationRepository(t)
		service := NewNotificationService(notificationRepo)

		notificationRepo.EXPECT().
			MarkNotificationRead(ctx, userID, notificationID).
			Return(nil)

		require.NoError(t, service.MarkRead(ctx, userID, notificationID))
	})

	t.Run("not found", func(t *testing.T) {
		notificationRepo := mockRepo.NewMockNotificationRepository(t)
		service := NewNotificationService(notificationRepo)

		notificationRepo.EXPECT().
			MarkNotificationRead(ctx, userID, notificationID).
			Return(repository.ErrNotificationNotFound)

		err := service.MarkRead(ctx, userID, notificationID)
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrNotFound.ErrorCode(), appErr.ErrorCode())
	})
}
