package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	mockRepo "beacon/internal/mocks/repository"
	mockSvc "beacon/internal/mocks/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type eventFixture struct {
	eventRepo    *mockRepo.MockEventRepository
	categoryRepo *mockRepo.MockCategoryRepository
	publisher    *mockSvc.MockEventPublisher
	service      usecase.EventUsecase
}

func newEventFixture(t *testing.T) *eventFixture {
	t.Helper()

	f := &eventFixture{
		eventRepo:    mockRepo.NewMockEventRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	f.service = NewEventService(
		f.eventRepo,
		f.categoryRepo,
		f.publisher,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	return f
}

func validCreateInput(categoryID uuid.UUID) *usecase.CreateEventInput {
	return &usecase.CreateEventInput{
		Title:      "Farmers market",
		Latitude:   kigali.Latitude,
		Longitude:  kigali.Longitude,
		Address:    "KN 4 Ave, Kigali",
		CategoryID: categoryID,
		StartTime:  time.Now().Add(24 * time.Hour),
		EndTime:    time.Now().Add(28 * time.Hour),
	}
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	creatorID := uuid.New()
	categoryID := uuid.New()
	input := validCreateInput(categoryID)

	f.categoryRepo.EXPECT().
		FindCategoryByID(ctx, categoryID).
		Return(&entity.Category{ID: categoryID, NameEn: "Market"}, nil)
	f.eventRepo.EXPECT().
		CreateEvent(ctx, mock.AnythingOfType("*entity.Event")).
		Run(func(_ context.Context, event *entity.Event) {
			event.ID = uuid.New()
		}).
		Return(nil)
	f.publisher.EXPECT().
		PublishEventCreated(ctx, mock.AnythingOfType("*service.EventCreatedMessage")).
		Return(nil)

	event, err := f.service.CreateEvent(ctx, creatorID, input)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, creatorID, event.CreatorID)
	assert.Equal(t, input.Title, event.Title)
	assert.NotEqual(t, uuid.Nil, event.ID)
}

func TestEventService_CreateEvent_PublishFailureDoesNotFail(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	categoryID := uuid.New()

	f.categoryRepo.EXPECT().
		FindCategoryByID(ctx, categoryID).
		Return(&entity.Category{ID: categoryID}, nil)
	f.eventRepo.EXPECT().
		CreateEvent(ctx, mock.AnythingOfType("*entity.Event")).
		Return(nil)
	f.publisher.EXPECT().
		PublishEventCreated(ctx, mock.AnythingOfType("*service.EventCreatedMessage")).
		Return(errors.New("broker unavailable"))

	event, err := f.service.CreateEvent(ctx, uuid.New(), validCreateInput(categoryID))
	require.NoError(t, err)
	assert.NotNil(t, event)
}

func TestEventService_CreateEvent_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()

	t.Run("invalid coordinate", func(t *testing.T) {
		f := newEventFixture(t)
		input := validCreateInput(categoryID)
		input.Latitude = 120.0

		event, err := f.service.CreateEvent(ctx, uuid.New(), input)
		require.Error(t, err)
		assert.Nil(t, event)
	})

	t.Run("start not before end", func(t *testing.T) {
		f := newEventFixture(t)
		input := validCreateInput(categoryID)
		input.EndTime = input.StartTime

		event, err := f.service.CreateEvent(ctx, uuid.New(), input)
		require.Error(t, err)
		assert.Nil(t, event)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrEventTimeWindow.ErrorCode(), appErr.ErrorCode())
	})

	t.Run("unknown category", func(t *testing.T) {
		f := newEventFixture(t)
		f.categoryRepo.EXPECT().
			FindCategoryByID(ctx, categoryID).
			Return(nil, repository.ErrCategoryNotFound)

		event, err := f.service.CreateEvent(ctx, uuid.New(), validCreateInput(categoryID))
		require.Error(t, err)
		assert.Nil(t, event)
	})
}

func TestEventService_UpdateEvent_OwnershipViolation(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	creatorID := uuid.New()
	intruderID := uuid.New()
	event := eventAt(kigali)
	event.CreatorID = creatorID

	f.eventRepo.EXPECT().
		FindEventByID(ctx, event.ID).
		Return(event, nil)

	newTitle := "hijacked"
	updated, err := f.service.UpdateEvent(ctx, intruderID, event.ID, &usecase.UpdateEventInput{Title: &newTitle})
	require.Error(t, err)
	assert.Nil(t, updated)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrEventOwnershipViolation.ErrorCode(), appErr.ErrorCode())
}

func TestEventService_UpdateEvent_Success(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	creatorID := uuid.New()
	event := eventAt(kigali)
	event.CreatorID = creatorID

	f.eventRepo.EXPECT().
		FindEventByID(ctx, event.ID).
		Return(event, nil)
	f.eventRepo.EXPECT().
		UpdateEvent(ctx, mock.AnythingOfType("*entity.Event")).
		Return(nil)

	newTitle := "renamed"
	updated, err := f.service.UpdateEvent(ctx, creatorID, event.ID, &usecase.UpdateEventInput{Title: &newTitle})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "renamed", updated.Title)
}

func TestEventService_DeleteEvent_NotFound(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	eventID := uuid.New()

	f.eventRepo.EXPECT().
		FindEventByID(ctx, eventID).
		Return(nil, repository.ErrEventNotFound)

	err := f.service.DeleteEvent(ctx, uuid.New(), eventID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrEventNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestEventService_RegisterParticipant_Confirmed(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	capacity := 10
	event := eventAt(kigali)
	event.MaxParticipants = &capacity

	f.eventRepo.EXPECT().
		FindEventByID(ctx, event.ID).
		Return(event, nil)
	f.eventRepo.EXPECT().
		CountRegisteredParticipants(ctx, event.ID).
		Return(int64(3), nil)
	f.eventRepo.EXPECT().
		CreateParticipant(ctx, mock.AnythingOfType("*entity.EventParticipant")).
		Return(nil)

	participant, err := f.service.RegisterParticipant(ctx, event.ID, userID)
	require.NoError(t, err)
	require.NotNil(t, participant)
	assert.Equal(t, entity.ParticipantStatusRegistered, participant.Status)
}

func TestEventService_RegisterParticipant_WaitlistedWhenFull(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	capacity := 3
	event := eventAt(kigali)
	event.MaxParticipants = &capacity

	f.eventRepo.EXPECT().
		FindEventByID(ctx, event.ID).
		Return(event, nil)
	f.eventRepo.EXPECT().
		CountRegisteredParticipants(ctx, event.ID).
		Return(int64(3), nil)
	f.eventRepo.EXPECT().
		CreateParticipant(ctx, mock.AnythingOfType("*entity.EventParticipant")).
		Return(nil)

	participant, err := f.service.RegisterParticipant(ctx, event.ID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, entity.ParticipantStatusWaitlisted, participant.Status)
}

func TestEventService_RegisterParticipant_Duplicate(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	event := eventAt(kigali)

	f.eventRepo.EXPECT().
		FindEventByID(ctx, event.ID).
		Return(event, nil)
	f.eventRepo.EXPECT().
		CreateParticipant(ctx, mock.AnythingOfType("*entity.EventParticipant")).
		Return(repository.ErrDuplicateParticipant)

	participant, err := f.service.RegisterParticipant(ctx, event.ID, uuid.New())
	require.Error(t, err)
	assert.Nil(t, participant)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrAlreadyRegistered.ErrorCode(), appErr.ErrorCode())
}

func TestEventService_RegisterParticipant_AfterStart(t *testing.T) {
	f := newEventFixture(t)

	ctx := context.Background()
	event := eventAt(kigali)
	event.StartTime = time.Now().Add(-time.Hour)

	f.eventRepo.EXPECT().
		FindEventByID(ctx, event.ID).
		Return(event, nil)

	participant, err := f.service.RegisterParticipant(ctx, event.ID, uuid.New())
	require.Error(t, err)
	assert.Nil(t, participant)
}
