package impl

import (
	"context"
	"math"
	"testing"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/geo"
	"beacon/internal/infra/spatial"
	mockRepo "beacon/internal/mocks/repository"
	mockSvc "beacon/internal/mocks/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kigali = entity.Coordinate{Latitude: -1.9441, Longitude: 30.0619}

func newSearchTestConfig() *config.Config {
	return &config.Config{
		Notification: &config.NotificationConfig{
			DefaultRadiusKm: 5.0,
			MaxRadiusKm:     100.0,
			LookaheadWindow: 24 * time.Hour,
			SweepInterval:   15 * time.Minute,
			PublishTimeout:  time.Second,
		},
	}
}

func eventAt(coordinate entity.Coordinate) *entity.Event {
	return &entity.Event{
		ID:         uuid.New(),
		Title:      "test event",
		Coordinate: coordinate,
		CategoryID: uuid.New(),
		CreatorID:  uuid.New(),
		StartTime:  time.Now().Add(2 * time.Hour),
		EndTime:    time.Now().Add(4 * time.Hour),
	}
}

func TestEventSearchService_SearchEvents_OrderedByDistance(t *testing.T) {
	mockEventRepo := mockRepo.NewMockEventRepository(t)
	mockIndex := mockSvc.NewMockSpatialIndex(t)
	service := NewEventSearchService(mockEventRepo, mockIndex, newSearchTestConfig())

	ctx := context.Background()
	near := eventAt(entity.Coordinate{Latitude: -1.9450, Longitude: 30.0625})
	far := eventAt(entity.Coordinate{Latitude: -1.9800, Longitude: 30.1000})
	radius := 20.0

	// Index returns candidates out of order; the service must sort them.
	mockIndex.EXPECT().
		QueryNear(ctx, kigali, radius, repository.EventFilter{}).
		Return([]*entity.Event{far, near}, nil)

	results, err := service.SearchEvents(ctx, &usecase.SearchEventsInput{
		Center:   &kigali,
		RadiusKm: &radius,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, near.ID, results[0].ID)
	assert.Equal(t, far.ID, results[1].ID)
	assert.Less(t, results[0].DistanceKm, results[1].DistanceKm)
	assert.InDelta(t, geo.DistanceKm(kigali, near.Coordinate), results[0].DistanceKm, 1e-9)
}

func TestEventSearchService_SearchEvents_BoundaryInclusive(t *testing.T) {
	ctx := context.Background()
	boundary := eventAt(entity.Coordinate{Latitude: -1.9000, Longitude: 30.0619})
	exact := geo.DistanceKm(kigali, boundary.Coordinate)

	t.Run("event at exactly the radius is included", func(t *testing.T) {
		mockEventRepo := mockRepo.NewMockEventRepository(t)
		mockIndex := mockSvc.NewMockSpatialIndex(t)
		service := NewEventSearchService(mockEventRepo, mockIndex, newSearchTestConfig())

		mockIndex.EXPECT().
			QueryNear(ctx, kigali, exact, repository.EventFilter{}).
			Return([]*entity.Event{boundary}, nil)

		results, err := service.SearchEvents(ctx, &usecase.SearchEventsInput{
			Center:   &kigali,
			RadiusKm: &exact,
		})
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("event just beyond the radius is excluded", func(t *testing.T) {
		mockEventRepo := mockRepo.NewMockEventRepository(t)
		mockIndex := mockSvc.NewMockSpatialIndex(t)
		service := NewEventSearchService(mockEventRepo, mockIndex, newSearchTestConfig())

		smaller := exact * 0.999
		mockIndex.EXPECT().
			QueryNear(ctx, kigali, smaller, repository.EventFilter{}).
			Return([]*entity.Event{boundary}, nil)

		results, err := service.SearchEvents(ctx, &usecase.SearchEventsInput{
			Center:   &kigali,
			RadiusKm: &smaller,
		})
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestEventSearchService_SearchEvents_Pagination(t *testing.T) {
	mockEventRepo := mockRepo.NewMockEventRepository(t)
	mockIndex := mockSvc.NewMockSpatialIndex(t)
	service := NewEventSearchService(mockEventRepo, mockIndex, newSearchTestConfig())

	ctx := context.Background()
	radius := 50.0
	candidates := []*entity.Event{
		eventAt(entity.Coordinate{Latitude: -1.9000, Longitude: 30.0619}),
		eventAt(entity.Coordinate{Latitude: -1.9300, Longitude: 30.0619}),
		eventAt(entity.Coordinate{Latitude: -1.9440, Longitude: 30.0619}),
	}

	mockIndex.EXPECT().
		QueryNear(ctx, kigali, radius, repository.EventFilter{}).
		Return(candidates, nil).Times(3)

	first, err := service.SearchEvents(ctx, &usecase.SearchEventsInput{
		Center: &kigali, RadiusKm: &radius, Limit: 2,
	})
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := service.SearchEvents(ctx, &usecase.SearchEventsInput{
		Center: &kigali, RadiusKm: &radius, Limit: 2, Offset: 2,
	})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.NotEqual(t, first[0].ID, second[0].ID)
	assert.NotEqual(t, first[1].ID, second[0].ID)

	beyond, err := service.SearchEvents(ctx, &usecase.SearchEventsInput{
		Center: &kigali, RadiusKm: &radius, Limit: 2, Offset: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestEventSearchService_SearchEvents_WithoutCenter(t *testing.T) {
	mockEventRepo := mockRepo.NewMockEventRepository(t)
	mockIndex := mockSvc.NewMockSpatialIndex(t)
	service := NewEventSearchService(mockEventRepo, mockIndex, newSearchTestConfig())

	ctx := context.Background()
	categoryID := uuid.New()
	listed := []*entity.Event{eventAt(kigali)}

	mockEventRepo.EXPECT().
		FindEvents(ctx, repository.EventFilter{CategoryID: &categoryID}, defaultSearchLimit, 0).
		Return(listed, nil)

	results, err := service.SearchEvents(ctx, &usecase.SearchEventsInput{CategoryID: &categoryID})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Zero(t, results[0].DistanceKm)
}

func TestEventSearchService_SearchEvents_CategoryNarrowsProximity(t *testing.T) {
	mockEventRepo := mockRepo.NewMockEventRepository(t)
	service := NewEventSearchService(mockEventRepo, spatial.NewMemoryIndex(mockEventRepo), newSearchTestConfig())

	ctx := context.Background()
	music := uuid.New()
	sports := uuid.New()

	musicNearby := eventAt(entity.Coordinate{Latitude: -1.9450, Longitude: 30.0625})
	musicNearby.CategoryID = music
	sportsNearby := eventAt(entity.Coordinate{Latitude: -1.9460, Longitude: 30.0630})
	sportsNearby.CategoryID = sports
	musicDistant := eventAt(entity.Coordinate{Latitude: 0.3476, Longitude: 32.5825})
	musicDistant.CategoryID = music

	stored := []*entity.Event{musicNearby, sportsNearby, musicDistant}
	mockEventRepo.EXPECT().
		FindAllEvents(ctx, repository.EventFilter{CategoryID: &music}).
		RunAndReturn(func(_ context.Context, filter repository.EventFilter) ([]*entity.Event, error) {
			matched := make([]*entity.Event, 0, len(stored))
			for _, event := range stored {
				if event.CategoryID == *filter.CategoryID {
					matched = append(matched, event)
				}
			}
			return matched, nil
		})

	// Only the event that is both in range and in the category survives: the
	// nearby sports event falls to the filter, the distant music event to the
	// radius.
	radius := 5.0
	results, err := service.SearchEvents(ctx, &usecase.SearchEventsInput{
		Center:     &kigali,
		RadiusKm:   &radius,
		CategoryID: &music,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, musicNearby.ID, results[0].ID)
}

func TestEventSearchService_SearchEvents_ValidationErrors(t *testing.T) {
	mockEventRepo := mockRepo.NewMockEventRepository(t)
	mockIndex := mockSvc.NewMockSpatialIndex(t)
	service := NewEventSearchService(mockEventRepo, mockIndex, newSearchTestConfig())

	ctx := context.Background()
	radius := 5.0
	tooLarge := 250.0
	zero := 0.0
	nan := math.NaN()
	inf := math.Inf(1)
	badLat := entity.Coordinate{Latitude: 95.0, Longitude: 30.0}

	tests := []struct {
		name    string
		input   *usecase.SearchEventsInput
		wantErr error
	}{
		{
			name:    "center without radius",
			input:   &usecase.SearchEventsInput{Center: &kigali},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "radius without center",
			input:   &usecase.SearchEventsInput{RadiusKm: &radius},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "invalid coordinate",
			input:   &usecase.SearchEventsInput{Center: &badLat, RadiusKm: &radius},
			wantErr: domainerrors.ErrInvalidCoordinate,
		},
		{
			name:    "non-positive radius",
			input:   &usecase.SearchEventsInput{Center: &kigali, RadiusKm: &zero},
			wantErr: domainerrors.ErrInvalidRadius,
		},
		{
			name:    "NaN radius",
			input:   &usecase.SearchEventsInput{Center: &kigali, RadiusKm: &nan},
			wantErr: domainerrors.ErrInvalidRadius,
		},
		{
			name:    "infinite radius",
			input:   &usecase.SearchEventsInput{Center: &kigali, RadiusKm: &inf},
			wantErr: domainerrors.ErrInvalidRadius,
		},
		{
			name:    "radius above the configured cap",
			input:   &usecase.SearchEventsInput{Center: &kigali, RadiusKm: &tooLarge},
			wantErr: domainerrors.ErrRadiusTooLarge,
		},
		{
			name:    "negative offset",
			input:   &usecase.SearchEventsInput{Center: &kigali, RadiusKm: &radius, Offset: -1},
			wantErr: domainerrors.ErrInvalidPagination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := service.SearchEvents(ctx, tt.input)
			require.Error(t, err)
			assert.Nil(t, results)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			var wantErr domainerrors.AppError
			require.ErrorAs(t, tt.wantErr, &wantErr)
			assert.Equal(t, wantErr.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestEventSearchService_SearchEvents_IndexError(t *testing.T) {
	mockEventRepo := mockRepo.NewMockEventRepository(t)
	mockIndex := mockSvc.NewMockSpatialIndex(t)
	service := NewEventSearchService(mockEventRepo, mockIndex, newSearchTestConfig())

	ctx := context.Background()
	radius := 5.0

	mockIndex.EXPECT().
		QueryNear(ctx, kigali, radius, repository.EventFilter{}).
		Return(nil, errors.New("db error"))

	results, err := service.SearchEvents(ctx, &usecase.SearchEventsInput{
		Center:   &kigali,
		RadiusKm: &radius,
	})
	require.Error(t, err)
	assert.Nil(t, results)
	assert.Contains(t, err.Error(), "failed to query spatial index")
}
