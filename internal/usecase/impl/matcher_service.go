package impl

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/geo"
	"beacon/internal/usecase"
)

type matcherService struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewMatcherService creates a new preference matcher instance
func NewMatcherService(userRepo repository.UserRepository, cfg *config.Config) usecase.MatcherUsecase {
	return &matcherService{
		userRepo: userRepo,
		config:   cfg,
	}
}

// FindInterestedUsers returns every user whose preference matches the event.
// The repository already excludes users without a home coordinate; the cheap
// bounding-box test here rejects most of the rest before the haversine runs.
func (s *matcherService) FindInterestedUsers(ctx context.Context, event *entity.Event) ([]*usecase.MatchedUser, error) {
	users, err := s.userRepo.FindUsersWithPreferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users for matching: %w", err)
	}

	defaultRadius := s.config.Notification.DefaultRadiusKm

	matched := make([]*usecase.MatchedUser, 0)
	for _, user := range users {
		if user.HomeCoordinate == nil {
			continue
		}

		radiusKm := defaultRadius
		if user.Preference != nil {
			radiusKm = user.Preference.RadiusKm
			if !user.Preference.SubscribesTo(event.CategoryID) {
				continue
			}
		}
		if radiusKm <= 0 {
			continue
		}

		box := geo.BoundingBox(*user.HomeCoordinate, radiusKm)
		if !geo.Contains(box, event.Coordinate) {
			continue
		}

		distance := geo.DistanceKm(*user.HomeCoordinate, event.Coordinate)
		// Boundary inclusive: a user at exactly their radius is matched.
		if distance > radiusKm {
			continue
		}

		matched = append(matched, &usecase.MatchedUser{
			User:       user,
			DistanceKm: distance,
		})
	}

	sort.Slice(matched, func(i, j int) bool {
		return bytes.Compare(matched[i].User.ID[:], matched[j].User.ID[:]) < 0
	})

	return matched, nil
}
