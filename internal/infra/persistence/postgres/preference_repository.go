// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// preferenceRepository implements the repository.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindPreferenceByUser retrieves the preference owned by the user.
func (repo *preferenceRepository) FindPreferenceByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	var preferenceM model.NotificationPreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&preferenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find preference by user")
	}

	var categoryModels []*model.PreferenceCategoryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load preference categories")
	}

	return toPreferenceDomain(&preferenceM, categoryModels), nil
}

// CreatePreference persists a preference with its category set.
func (repo *preferenceRepository) CreatePreference(ctx context.Context, preference *entity.NotificationPreference) error {
	preferenceM := fromPreferenceDomain(preference)

	if err := repo.db.WithContext(ctx).Create(preferenceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("preference already exists for user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create preference")
	}

	if len(preference.CategoryIDs) > 0 {
		categoryModels := make([]*model.PreferenceCategoryModel, 0, len(preference.CategoryIDs))
		for _, categoryID := range preference.CategoryIDs {
			categoryModels = append(categoryModels, &model.PreferenceCategoryModel{
				UserID:     preference.UserID,
				CategoryID: categoryID,
			})
		}

		if err := repo.db.WithContext(ctx).Create(categoryModels).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category reference")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create preference categories")
		}
	}

	preference.UpdatedAt = preferenceM.UpdatedAt

	return nil
}

// DeletePreference removes the user's preference and its category set.
// Deleting an absent preference is not an error.
func (repo *preferenceRepository) DeletePreference(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.PreferenceCategoryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete preference categories")
	}

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.NotificationPreferenceModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete preference")
	}

	return nil
}

// --- Mapper Functions ---

// toPreferenceDomain converts GORM preference models to a domain NotificationPreference entity.
func toPreferenceDomain(data *model.NotificationPreferenceModel, categories []*model.PreferenceCategoryModel) *entity.NotificationPreference {
	if data == nil {
		return nil
	}

	categoryIDs := make([]uuid.UUID, 0, len(categories))
	for _, categoryM := range categories {
		categoryIDs = append(categoryIDs, categoryM.CategoryID)
	}

	return &entity.NotificationPreference{
		UserID:      data.UserID,
		RadiusKm:    data.RadiusKm,
		CategoryIDs: categoryIDs,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromPreferenceDomain converts a domain NotificationPreference entity to its GORM model.
func fromPreferenceDomain(data *entity.NotificationPreference) *model.NotificationPreferenceModel {
	if data == nil {
		return nil
	}

	return &model.NotificationPreferenceModel{
		UserID:    data.UserID,
		RadiusKm:  data.RadiusKm,
		UpdatedAt: data.UpdatedAt,
	}
}
