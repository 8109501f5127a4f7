package impl

import (
	"context"
	"testing"

	"beacon/internal/domain/entity"
	"beacon/internal/geo"
	mockRepo "beacon/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userWithHome(coordinate entity.Coordinate, preference *entity.NotificationPreference) *entity.User {
	return &entity.User{
		ID:                uuid.New(),
		Email:             "user@example.com",
		Name:              "user",
		PreferredLanguage: "en",
		HomeCoordinate:    &coordinate,
		Preference:        preference,
	}
}

func TestMatcherService_FindInterestedUsers_WithinRadius(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewMatcherService(mockUserRepo, newSearchTestConfig())

	ctx := context.Background()
	event := eventAt(kigali)

	// ~1.1 km from the event, within the 5 km default radius.
	nearby := userWithHome(entity.Coordinate{Latitude: -1.9536, Longitude: 30.0606}, nil)
	// ~250 km away, far outside any sane radius.
	distant := userWithHome(entity.Coordinate{Latitude: 0.3476, Longitude: 32.5825}, nil)

	mockUserRepo.EXPECT().
		FindUsersWithPreferences(ctx).
		Return([]*entity.User{nearby, distant}, nil)

	matched, err := service.FindInterestedUsers(ctx, event)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, nearby.ID, matched[0].User.ID)
	assert.InDelta(t, geo.DistanceKm(*nearby.HomeCoordinate, event.Coordinate), matched[0].DistanceKm, 1e-9)
}

func TestMatcherService_FindInterestedUsers_BoundaryInclusive(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewMatcherService(mockUserRepo, newSearchTestConfig())

	ctx := context.Background()
	event := eventAt(kigali)
	home := entity.Coordinate{Latitude: -1.9000, Longitude: 30.0619}
	exact := geo.DistanceKm(home, event.Coordinate)

	atBoundary := userWithHome(home, &entity.NotificationPreference{
		UserID:   uuid.New(),
		RadiusKm: exact,
	})
	justInside := userWithHome(home, &entity.NotificationPreference{
		UserID:   uuid.New(),
		RadiusKm: exact * 0.999,
	})

	mockUserRepo.EXPECT().
		FindUsersWithPreferences(ctx).
		Return([]*entity.User{atBoundary, justInside}, nil)

	matched, err := service.FindInterestedUsers(ctx, event)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, atBoundary.ID, matched[0].User.ID)
}

func TestMatcherService_FindInterestedUsers_CategoryFilter(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewMatcherService(mockUserRepo, newSearchTestConfig())

	ctx := context.Background()
	event := eventAt(kigali)
	otherCategory := uuid.New()
	home := entity.Coordinate{Latitude: -1.9450, Longitude: 30.0625}

	subscribed := userWithHome(home, &entity.NotificationPreference{
		UserID:      uuid.New(),
		RadiusKm:    5.0,
		CategoryIDs: []uuid.UUID{event.CategoryID},
	})
	unsubscribed := userWithHome(home, &entity.NotificationPreference{
		UserID:      uuid.New(),
		RadiusKm:    5.0,
		CategoryIDs: []uuid.UUID{otherCategory},
	})
	// Empty category set means all categories.
	allCategories := userWithHome(home, &entity.NotificationPreference{
		UserID:   uuid.New(),
		RadiusKm: 5.0,
	})

	mockUserRepo.EXPECT().
		FindUsersWithPreferences(ctx).
		Return([]*entity.User{subscribed, unsubscribed, allCategories}, nil)

	matched, err := service.FindInterestedUsers(ctx, event)
	require.NoError(t, err)
	require.Len(t, matched, 2)
	matchedIDs := []uuid.UUID{matched[0].User.ID, matched[1].User.ID}
	assert.Contains(t, matchedIDs, subscribed.ID)
	assert.Contains(t, matchedIDs, allCategories.ID)
	assert.NotContains(t, matchedIDs, unsubscribed.ID)
}

func TestMatcherService_FindInterestedUsers_DefaultRadiusApplies(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	cfg := newSearchTestConfig()
	cfg.Notification.DefaultRadiusKm = 0.5
	service := NewMatcherService(mockUserRepo, cfg)

	ctx := context.Background()
	event := eventAt(kigali)

	// ~1.1 km out: inside the 5 km preference radius but outside the 0.5 km default.
	home := entity.Coordinate{Latitude: -1.9536, Longitude: 30.0606}
	withPreference := userWithHome(home, &entity.NotificationPreference{
		UserID:   uuid.New(),
		RadiusKm: 5.0,
	})
	withoutPreference := userWithHome(home, nil)

	mockUserRepo.EXPECT().
		FindUsersWithPreferences(ctx).
		Return([]*entity.User{withPreference, withoutPreference}, nil)

	matched, err := service.FindInterestedUsers(ctx, event)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, withPreference.ID, matched[0].User.ID)
}

func TestMatcherService_FindInterestedUsers_RepoError(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewMatcherService(mockUserRepo, newSearchTestConfig())

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindUsersWithPreferences(ctx).
		Return(nil, errors.New("db error"))

	matched, err := service.FindInterestedUsers(ctx, eventAt(kigali))
	require.Error(t, err)
	assert.Nil(t, matched)
}
