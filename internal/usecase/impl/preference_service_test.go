package impl

import (
	"context"
	"testing"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	mockRepo "beacon/internal/mocks/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type preferenceFixture struct {
	userRepo       *mockRepo.MockUserRepository
	preferenceRepo *mockRepo.MockPreferenceRepository
	categoryRepo   *mockRepo.MockCategoryRepository
	txManager      *mockRepo.MockTransactionManager
	service        usecase.PreferenceUsecase
}

func newPreferenceFixture(t *testing.T) *preferenceFixture {
	t.Helper()

	f := &preferenceFixture{
		userRepo:       mockRepo.NewMockUserRepository(t),
		preferenceRepo: mockRepo.NewMockPreferenceRepository(t),
		categoryRepo:   mockRepo.NewMockCategoryRepository(t),
		txManager:      mockRepo.NewMockTransactionManager(t),
	}
	f.service = NewPreferenceService(
		f.userRepo,
		f.preferenceRepo,
		f.categoryRepo,
		f.txManager,
		newSearchTestConfig(),
	)

	return f
}

func TestPreferenceService_GetPreference_DefaultsWhenAbsent(t *testing.T) {
	f := newPreferenceFixture(t)

	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)
	f.preferenceRepo.EXPECT().
		FindPreferenceByUser(ctx, userID).
		Return(nil, repository.ErrPreferenceNotFound)

	preference, err := f.service.GetPreference(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, preference)
	assert.Equal(t, userID, preference.UserID)
	assert.InDelta(t, 5.0, preference.RadiusKm, 1e-9)
	assert.Empty(t, preference.CategoryIDs)
}

func TestPreferenceService_GetPreference_UserNotFound(t *testing.T) {
	f := newPreferenceFixture(t)

	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	preference, err := f.service.GetPreference(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, preference)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestPreferenceService_UpdatePreference_RadiusValidation(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		radiusKm float64
		wantCode string
	}{
		{name: "zero radius", radiusKm: 0, wantCode: domainerrors.ErrInvalidRadius.ErrorCode()},
		{name: "negative radius", radiusKm: -2, wantCode: domainerrors.ErrInvalidRadius.ErrorCode()},
		{name: "over maximum", radiusKm: 101, wantCode: domainerrors.ErrRadiusTooLarge.ErrorCode()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newPreferenceFixture(t)

			preference, err := f.service.UpdatePreference(ctx, uuid.New(), &usecase.UpdatePreferenceInput{
				RadiusKm: tc.radiusKm,
			})
			require.Error(t, err)
			assert.Nil(t, preference)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tc.wantCode, appErr.ErrorCode())
		})
	}
}

func TestPreferenceService_UpdatePreference_ReplacesInTransaction(t *testing.T) {
	f := newPreferenceFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()

	f.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)
	f.categoryRepo.EXPECT().
		FindCategoryByID(ctx, categoryID).
		Return(&entity.Category{ID: categoryID}, nil)

	txRepo := mockRepo.NewMockPreferenceRepository(t)
	txRepo.EXPECT().
		DeletePreference(ctx, userID).
		Return(nil)
	txRepo.EXPECT().
		CreatePreference(ctx, mock.AnythingOfType("*entity.NotificationPreference")).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().
		NewPreferenceRepository().
		Return(txRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	preference, err := f.service.UpdatePreference(ctx, userID, &usecase.UpdatePreferenceInput{
		RadiusKm:    10,
		CategoryIDs: []uuid.UUID{categoryID, categoryID},
	})
	require.NoError(t, err)
	require.NotNil(t, preference)
	assert.Equal(t, userID, preference.UserID)
	assert.InDelta(t, 10.0, preference.RadiusKm, 1e-9)
	// Duplicate IDs collapse to one.
	assert.Equal(t, []uuid.UUID{categoryID}, preference.CategoryIDs)
}

func TestPreferenceService_UpdatePreference_UnknownCategory(t *testing.T) {
	f := newPreferenceFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()

	f.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)
	f.categoryRepo.EXPECT().
		FindCategoryByID(ctx, categoryID).
		Return(nil, repository.ErrCategoryNotFound)

	preference, err := f.service.UpdatePreference(ctx, userID, &usecase.UpdatePreferenceInput{
		RadiusKm:    10,
		CategoryIDs: []uuid.UUID{categoryID},
	})
	require.Error(t, err)
	assert.Nil(t, preference)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrCategoryNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestPreferenceService_UpdateHomeLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newPreferenceFixture(t)
		userID := uuid.New()

		f.userRepo.EXPECT().
			UpdateHomeCoordinate(ctx, userID, kigali).
			Return(nil)

		require.NoError(t, f.service.UpdateHomeLocation(ctx, userID, kigali))
	})

	t.Run("invalid coordinate", func(t *testing.T) {
		f := newPreferenceFixture(t)

		err := f.service.UpdateHomeLocation(ctx, uuid.New(), entity.Coordinate{Latitude: 91, Longitude: 0})
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrInvalidCoordinate.ErrorCode(), appErr.ErrorCode())
	})

	t.Run("user not found", func(t *testing.T) {
		f := newPreferenceFixture(t)
		userID := uuid.New()

		f.userRepo.EXPECT().
			UpdateHomeCoordinate(ctx, userID, kigali).
			Return(repository.ErrUserNotFound)

		err := f.service.UpdateHomeLocation(ctx, userID, kigali)
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrUserNotFound.ErrorCode(), appErr.ErrorCode())
	})
}
