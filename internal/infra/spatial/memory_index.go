package spatial

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/geo"

	"github.com/pkg/errors"
)

// memoryIndex answers proximity queries without a geospatial extension. It
// scans the repository with the non-spatial filter applied and prunes to a
// latitude/longitude bounding box in application code. The box deliberately
// over-covers the circle, so callers get a superset of the true matches and
// must filter by exact distance themselves.
type memoryIndex struct {
	events repository.EventRepository
}

// NewMemoryIndex is the constructor for memoryIndex.
func NewMemoryIndex(events repository.EventRepository) service.SpatialIndex {
	return &memoryIndex{
		events: events,
	}
}

// QueryNear returns candidate events inside the bounding box around center.
func (idx *memoryIndex) QueryNear(ctx context.Context, center entity.Coordinate, radiusKm float64, filter repository.EventFilter) ([]*entity.Event, error) {
	all, err := idx.events.FindAllEvents(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan events for spatial query")
	}

	box := geo.BoundingBox(center, radiusKm)

	candidates := make([]*entity.Event, 0, len(all))
	for _, event := range all {
		if geo.Contains(box, event.Coordinate) {
			candidates = append(candidates, event)
		}
	}

	return candidates, nil
}
