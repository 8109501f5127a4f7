// Package impl contains the implementations of the use case interfaces.
package impl

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sort"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/geo"
	"beacon/internal/usecase"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

type eventSearchService struct {
	eventRepo    repository.EventRepository
	spatialIndex service.SpatialIndex
	config       *config.Config
}

// NewEventSearchService creates a new event search service instance
func NewEventSearchService(eventRepo repository.EventRepository, spatialIndex service.SpatialIndex, cfg *config.Config) usecase.EventSearchUsecase {
	return &eventSearchService{
		eventRepo:    eventRepo,
		spatialIndex: spatialIndex,
		config:       cfg,
	}
}

// SearchEvents returns events matching the input, ordered by distance for
// proximity searches and by start time otherwise.
func (s *eventSearchService) SearchEvents(ctx context.Context, input *usecase.SearchEventsInput) ([]*entity.EventWithDistance, error) {
	limit, offset, err := normalizePagination(input.Limit, input.Offset)
	if err != nil {
		return nil, err
	}

	// Center and radius must travel together.
	if (input.Center == nil) != (input.RadiusKm == nil) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("center and radius must both be provided or both be omitted")
	}

	filter := repository.EventFilter{
		CategoryID: input.CategoryID,
		StartAfter: input.StartAfter,
		EndBefore:  input.EndBefore,
	}

	if input.Center == nil {
		return s.searchByTime(ctx, filter, limit, offset)
	}

	return s.searchByProximity(ctx, *input.Center, *input.RadiusKm, filter, limit, offset)
}

// searchByTime is the plain listing path: no distances, ascending start time.
func (s *eventSearchService) searchByTime(ctx context.Context, filter repository.EventFilter, limit, offset int) ([]*entity.EventWithDistance, error) {
	events, err := s.eventRepo.FindEvents(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find events: %w", err)
	}

	results := make([]*entity.EventWithDistance, 0, len(events))
	for _, event := range events {
		results = append(results, &entity.EventWithDistance{Event: *event})
	}

	return results, nil
}

// searchByProximity asks the spatial index for candidates, then applies the
// exact haversine containment and ordering on top. The index may over-return
// (bounding-box backends do), never under-return, so the exact pass here is
// what defines the search semantics.
func (s *eventSearchService) searchByProximity(ctx context.Context, center entity.Coordinate, radiusKm float64, filter repository.EventFilter, limit, offset int) ([]*entity.EventWithDistance, error) {
	if err := center.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidCoordinate.WrapMessage(err.Error())
	}
	// NaN compares false against every bound, so it must be rejected
	// explicitly or it would slip through into the query.
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return nil, domainerrors.ErrInvalidRadius
	}
	if maxRadius := s.config.Notification.MaxRadiusKm; maxRadius > 0 && radiusKm > maxRadius {
		return nil, domainerrors.ErrRadiusTooLarge
	}

	candidates, err := s.spatialIndex.QueryNear(ctx, center, radiusKm, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query spatial index: %w", err)
	}

	results := make([]*entity.EventWithDistance, 0, len(candidates))
	for _, event := range candidates {
		distance := geo.DistanceKm(center, event.Coordinate)
		// Boundary inclusive: an event at exactly radiusKm matches.
		if distance <= radiusKm {
			results = append(results, &entity.EventWithDistance{
				Event:      *event,
				DistanceKm: distance,
			})
		}
	}

	// Order by ascending distance; equal distances fall back to event ID so
	// pagination is stable across identical queries.
	sort.Slice(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}

		return bytes.Compare(results[i].ID[:], results[j].ID[:]) < 0
	})

	if offset >= len(results) {
		return []*entity.EventWithDistance{}, nil
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}

	return results[offset:end], nil
}

// normalizePagination applies the default and maximum page size and rejects
// negative offsets.
func normalizePagination(limit, offset int) (int, int, error) {
	if offset < 0 {
		return 0, 0, domainerrors.ErrInvalidPagination
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	return limit, offset, nil
}
