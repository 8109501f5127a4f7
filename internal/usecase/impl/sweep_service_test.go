package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"beacon/internal/domain/constants"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
	mockRepo "beacon/internal/mocks/repository"
	mockSvc "beacon/internal/mocks/service"
	mockUC "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sweepFixture struct {
	eventRepo        *mockRepo.MockEventRepository
	categoryRepo     *mockRepo.MockCategoryRepository
	notificationRepo *mockRepo.MockNotificationRepository
	matcher          *mockUC.MockMatcherUsecase
	publisher        *mockSvc.MockEventPublisher
	service          usecase.SweepUsecase
}

func newSweepFixture(t *testing.T) *sweepFixture {
	t.Helper()

	f := &sweepFixture{
		eventRepo:        mockRepo.NewMockEventRepository(t),
		categoryRepo:     mockRepo.NewMockCategoryRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		matcher:          mockUC.NewMockMatcherUsecase(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}
	f.service = NewSweepService(
		f.eventRepo,
		f.categoryRepo,
		f.notificationRepo,
		f.matcher,
		f.publisher,
		newSearchTestConfig(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	return f
}

func TestSweepService_RunSweep_SendsReminders(t *testing.T) {
	f := newSweepFixture(t)

	ctx := context.Background()
	event := eventAt(kigali)
	category := &entity.Category{ID: event.CategoryID, NameEn: "Music", NameRw: "Umuziki"}
	userEn := userWithHome(entity.Coordinate{Latitude: -1.9536, Longitude: 30.0606}, nil)
	userRw := userWithHome(entity.Coordinate{Latitude: -1.9450, Longitude: 30.0625}, nil)
	userRw.PreferredLanguage = "rw"

	f.eventRepo.EXPECT().
		FindEventsStartingBetween(mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.Event{event}, nil)
	f.matcher.EXPECT().
		FindInterestedUsers(mock.Anything, event).
		Return([]*usecase.MatchedUser{
			{User: userEn, DistanceKm: 1.2345},
			{User: userRw, DistanceKm: 0.98},
		}, nil)
	f.categoryRepo.EXPECT().
		FindCategoryByID(mock.Anything, event.CategoryID).
		Return(category, nil)

	var records []*entity.NotificationRecord
	f.notificationRepo.EXPECT().
		InsertNotificationIfAbsent(mock.Anything, mock.AnythingOfType("*entity.NotificationRecord")).
		Run(func(_ context.Context, record *entity.NotificationRecord) {
			record.ID = uuid.New()
			records = append(records, record)
		}).
		Return(true, nil).Times(2)

	var published []*service.ReminderMessage
	f.publisher.EXPECT().
		PublishReminder(mock.Anything, mock.AnythingOfType("*service.ReminderMessage")).
		Run(func(_ context.Context, message *service.ReminderMessage) {
			published = append(published, message)
		}).
		Return(nil).Times(2)

	result, err := f.service.RunSweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.EventsScanned)
	assert.Equal(t, 2, result.UsersMatched)
	assert.Equal(t, 2, result.NotificationsSent)
	assert.Zero(t, result.DuplicatesSkipped)
	assert.Zero(t, result.PublishFailures)

	require.Len(t, records, 2)
	assert.Equal(t, constants.NotificationTypeEventReminder, records[0].Type)

	// The stored payload is the published message: distance rounded to one
	// decimal and the category name localized per user.
	require.Len(t, published, 2)
	assert.InDelta(t, 1.2, published[0].DistanceKm, 1e-9)
	assert.Equal(t, "Music", published[0].CategoryName)
	assert.InDelta(t, 1.0, published[1].DistanceKm, 1e-9)
	assert.Equal(t, "Umuziki", published[1].CategoryName)

	var payload service.ReminderMessage
	require.NoError(t, json.Unmarshal(records[0].Payload, &payload))
	assert.Equal(t, event.ID.String(), payload.EventID)
	assert.Equal(t, userEn.ID.String(), payload.UserID)
}

func TestSweepService_RunSweep_SecondPassIsIdempotent(t *testing.T) {
	f := newSweepFixture(t)

	ctx := context.Background()
	event := eventAt(kigali)
	category := &entity.Category{ID: event.CategoryID, NameEn: "Music", NameRw: "Umuziki"}
	user := userWithHome(entity.Coordinate{Latitude: -1.9536, Longitude: 30.0606}, nil)

	f.eventRepo.EXPECT().
		FindEventsStartingBetween(mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.Event{event}, nil)
	f.matcher.EXPECT().
		FindInterestedUsers(mock.Anything, event).
		Return([]*usecase.MatchedUser{{User: user, DistanceKm: 1.1}}, nil)
	f.categoryRepo.EXPECT().
		FindCategoryByID(mock.Anything, event.CategoryID).
		Return(category, nil)

	// The record already exists: nothing gets inserted and nothing published.
	f.notificationRepo.EXPECT().
		InsertNotificationIfAbsent(mock.Anything, mock.AnythingOfType("*entity.NotificationRecord")).
		Return(false, nil)

	result, err := f.service.RunSweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.NotificationsSent)
	assert.Equal(t, 1, result.DuplicatesSkipped)
	f.publisher.AssertNotCalled(t, "PublishReminder", mock.Anything, mock.Anything)
}

func TestSweepService_RunSweep_PublishFailureKeepsRecord(t *testing.T) {
	f := newSweepFixture(t)

	ctx := context.Background()
	event := eventAt(kigali)
	category := &entity.Category{ID: event.CategoryID, NameEn: "Music", NameRw: "Umuziki"}
	user := userWithHome(entity.Coordinate{Latitude: -1.9536, Longitude: 30.0606}, nil)

	f.eventRepo.EXPECT().
		FindEventsStartingBetween(mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.Event{event}, nil)
	f.matcher.EXPECT().
		FindInterestedUsers(mock.Anything, event).
		Return([]*usecase.MatchedUser{{User: user, DistanceKm: 1.1}}, nil)
	f.categoryRepo.EXPECT().
		FindCategoryByID(mock.Anything, event.CategoryID).
		Return(category, nil)
	f.notificationRepo.EXPECT().
		InsertNotificationIfAbsent(mock.Anything, mock.AnythingOfType("*entity.NotificationRecord")).
		Return(true, nil)
	f.publisher.EXPECT().
		PublishReminder(mock.Anything, mock.AnythingOfType("*service.ReminderMessage")).
		Return(errors.New("broker unavailable"))

	result, err := f.service.RunSweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.NotificationsSent)
	assert.Equal(t, 1, result.PublishFailures)
}

func TestSweepService_RunSweep_MatcherErrorSkipsEvent(t *testing.T) {
	f := newSweepFixture(t)

	ctx := context.Background()
	broken := eventAt(kigali)
	healthy := eventAt(entity.Coordinate{Latitude: -1.9500, Longitude: 30.0600})
	category := &entity.Category{ID: healthy.CategoryID, NameEn: "Music", NameRw: "Umuziki"}
	user := userWithHome(entity.Coordinate{Latitude: -1.9505, Longitude: 30.0605}, nil)

	f.eventRepo.EXPECT().
		FindEventsStartingBetween(mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.Event{broken, healthy}, nil)
	f.matcher.EXPECT().
		FindInterestedUsers(mock.Anything, broken).
		Return(nil, errors.New("db error"))
	f.matcher.EXPECT().
		FindInterestedUsers(mock.Anything, healthy).
		Return([]*usecase.MatchedUser{{User: user, DistanceKm: 0.1}}, nil)
	f.categoryRepo.EXPECT().
		FindCategoryByID(mock.Anything, healthy.CategoryID).
		Return(category, nil)
	f.notificationRepo.EXPECT().
		InsertNotificationIfAbsent(mock.Anything, mock.AnythingOfType("*entity.NotificationRecord")).
		Return(true, nil)
	f.publisher.EXPECT().
		PublishReminder(mock.Anything, mock.AnythingOfType("*service.ReminderMessage")).
		Return(nil)

	result, err := f.service.RunSweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.EventsScanned)
	assert.Equal(t, 1, result.NotificationsSent)
}

func TestSweepService_RunSweep_ScanError(t *testing.T) {
	f := newSweepFixture(t)

	ctx := context.Background()

	f.eventRepo.EXPECT().
		FindEventsStartingBetween(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db down"))

	result, err := f.service.RunSweep(ctx)
	require.Error(t, err)
	assert.Nil(t, result)
}
