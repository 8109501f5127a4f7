// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindUserByID retrieves a user by their unique ID, with the notification
// preference attached when one exists.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	user := toUserDomain(&userM)

	preferences, err := repo.loadPreferences(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	user.Preference = preferences[id]

	return user, nil
}

// FindUsersWithPreferences retrieves every user who has a home coordinate
// set, each with their notification preference attached when one exists.
func (repo *userRepository) FindUsersWithPreferences(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("home_latitude IS NOT NULL AND home_longitude IS NOT NULL").
		Order("id ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users with home locations")
	}

	if len(userModels) == 0 {
		return []*entity.User{}, nil
	}

	userIDs := make([]uuid.UUID, 0, len(userModels))
	for _, userM := range userModels {
		userIDs = append(userIDs, userM.ID)
	}

	preferences, err := repo.loadPreferences(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		user := toUserDomain(userM)
		user.Preference = preferences[user.ID]
		users = append(users, user)
	}

	return users, nil
}

// UpdateHomeCoordinate sets the user's home location.
func (repo *userRepository) UpdateHomeCoordinate(ctx context.Context, userID uuid.UUID, coordinate entity.Coordinate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"home_latitude":  coordinate.Latitude,
			"home_longitude": coordinate.Longitude,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update home coordinate")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// loadPreferences fetches preference rows plus their category sets for the
// given users in two batched queries, keyed by user ID.
func (repo *userRepository) loadPreferences(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.NotificationPreference, error) {
	var preferenceModels []*model.NotificationPreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&preferenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load notification preferences")
	}

	preferences := make(map[uuid.UUID]*entity.NotificationPreference, len(preferenceModels))
	for _, preferenceM := range preferenceModels {
		preferences[preferenceM.UserID] = &entity.NotificationPreference{
			UserID:      preferenceM.UserID,
			RadiusKm:    preferenceM.RadiusKm,
			CategoryIDs: []uuid.UUID{},
			UpdatedAt:   preferenceM.UpdatedAt,
		}
	}

	if len(preferences) == 0 {
		return preferences, nil
	}

	var categoryModels []*model.PreferenceCategoryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load preference categories")
	}

	for _, categoryM := range categoryModels {
		if preference, ok := preferences[categoryM.UserID]; ok {
			preference.CategoryIDs = append(preference.CategoryIDs, categoryM.CategoryID)
		}
	}

	return preferences, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:                data.ID,
		Email:             data.Email,
		Name:              data.Name,
		PreferredLanguage: data.PreferredLanguage,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}

	if data.HomeLatitude != nil && data.HomeLongitude != nil {
		user.HomeCoordinate = &entity.Coordinate{
			Latitude:  *data.HomeLatitude,
			Longitude: *data.HomeLongitude,
		}
	}

	return user
}
