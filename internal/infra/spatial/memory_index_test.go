package spatial

import (
	"context"
	"testing"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	mockRepo "beacon/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kigali = entity.Coordinate{Latitude: -1.9441, Longitude: 30.0619}

func eventNear(latitude, longitude float64) *entity.Event {
	return &entity.Event{
		ID:         uuid.New(),
		Title:      "test event",
		Coordinate: entity.Coordinate{Latitude: latitude, Longitude: longitude},
		CategoryID: uuid.New(),
		StartTime:  time.Now().Add(time.Hour),
		EndTime:    time.Now().Add(2 * time.Hour),
	}
}

func TestMemoryIndex_QueryNear_PrunesToBoundingBox(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	index := NewMemoryIndex(eventRepo)

	nearby := eventNear(-1.9500, 30.0600) // under 1km from the center
	distant := eventNear(0.3476, 32.5825) // Kampala, hundreds of km away

	eventRepo.EXPECT().
		FindAllEvents(context.Background(), repository.EventFilter{}).
		Return([]*entity.Event{nearby, distant}, nil)

	got, err := index.QueryNear(context.Background(), kigali, 2.0, repository.EventFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, nearby.ID, got[0].ID)
}

func TestMemoryIndex_QueryNear_IsSupersetOfCircle(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	index := NewMemoryIndex(eventRepo)

	// A box corner sits inside the bounding box but outside the circle; the
	// index must still return it and leave exact filtering to the caller.
	corner := eventNear(kigali.Latitude+0.017, kigali.Longitude+0.017)

	eventRepo.EXPECT().
		FindAllEvents(context.Background(), repository.EventFilter{}).
		Return([]*entity.Event{corner}, nil)

	got, err := index.QueryNear(context.Background(), kigali, 2.0, repository.EventFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMemoryIndex_QueryNear_PassesFilterThrough(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	index := NewMemoryIndex(eventRepo)

	categoryID := uuid.New()
	startAfter := time.Now()
	filter := repository.EventFilter{CategoryID: &categoryID, StartAfter: &startAfter}

	eventRepo.EXPECT().
		FindAllEvents(context.Background(), filter).
		Return([]*entity.Event{}, nil)

	got, err := index.QueryNear(context.Background(), kigali, 5.0, filter)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryIndex_QueryNear_RepoError(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	index := NewMemoryIndex(eventRepo)

	eventRepo.EXPECT().
		FindAllEvents(context.Background(), repository.EventFilter{}).
		Return(nil, errors.New("connection reset"))

	got, err := index.QueryNear(context.Background(), kigali, 5.0, repository.EventFilter{})
	require.Error(t, err)
	assert.Nil(t, got)
}
