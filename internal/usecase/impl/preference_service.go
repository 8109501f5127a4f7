package impl

import (
	"context"
	"fmt"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/errors"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

type preferenceService struct {
	userRepo       repository.UserRepository
	preferenceRepo repository.PreferenceRepository
	categoryRepo   repository.CategoryRepository
	txManager      repository.TransactionManager
	config         *config.Config
}

// NewPreferenceService creates a new preference service instance
func NewPreferenceService(
	userRepo repository.UserRepository,
	preferenceRepo repository.PreferenceRepository,
	categoryRepo repository.CategoryRepository,
	txManager repository.TransactionManager,
	cfg *config.Config,
) usecase.PreferenceUsecase {
	return &preferenceService{
		userRepo:       userRepo,
		preferenceRepo: preferenceRepo,
		categoryRepo:   categoryRepo,
		txManager:      txManager,
		config:         cfg,
	}
}

// GetPreference returns the stored preference, or the configured defaults
// when the user never set one.
func (s *preferenceService) GetPreference(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	preference, err := s.preferenceRepo.FindPreferenceByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return &entity.NotificationPreference{
				UserID:      userID,
				RadiusKm:    s.config.Notification.DefaultRadiusKm,
				CategoryIDs: []uuid.UUID{},
			}, nil
		}

		return nil, fmt.Errorf("failed to find preference: %w", err)
	}

	return preference, nil
}

// UpdatePreference replaces the user's preference wholesale inside one
// transaction. Delete-then-create keeps the category set consistent with the
// radius row; a reader on another connection sees either the old preference
// or the new one, never a mix.
func (s *preferenceService) UpdatePreference(ctx context.Context, userID uuid.UUID, input *usecase.UpdatePreferenceInput) (*entity.NotificationPreference, error) {
	if input.RadiusKm <= 0 {
		return nil, domainerrors.ErrInvalidRadius
	}
	if maxRadius := s.config.Notification.MaxRadiusKm; maxRadius > 0 && input.RadiusKm > maxRadius {
		return nil, domainerrors.ErrRadiusTooLarge
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	categoryIDs := dedupeCategoryIDs(input.CategoryIDs)
	for _, categoryID := range categoryIDs {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound.WrapMessage("unknown category: " + categoryID.String())
			}

			return nil, fmt.Errorf("failed to check category: %w", err)
		}
	}

	preference := &entity.NotificationPreference{
		UserID:      userID,
		RadiusKm:    input.RadiusKm,
		CategoryIDs: categoryIDs,
		UpdatedAt:   time.Now().UTC(),
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewPreferenceRepository()
		if err := repo.DeletePreference(ctx, userID); err != nil {
			return err
		}

		return repo.CreatePreference(ctx, preference)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace preference: %w", err)
	}

	return preference, nil
}

// UpdateHomeLocation sets the user's home coordinate.
func (s *preferenceService) UpdateHomeLocation(ctx context.Context, userID uuid.UUID, coordinate entity.Coordinate) error {
	if err := coordinate.Validate(); err != nil {
		return domainerrors.ErrInvalidCoordinate.WrapMessage(err.Error())
	}

	if err := s.userRepo.UpdateHomeCoordinate(ctx, userID, coordinate); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return fmt.Errorf("failed to update home coordinate: %w", err)
	}

	return nil
}

func dedupeCategoryIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
