// Package service defines the interfaces for infrastructure services the use
// case layer depends on.
package service

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
)

// SpatialIndex answers "which events lie near this point" cheaply, without
// promising exactness. Implementations must return a superset of the events
// truly within radiusKm of center: false positives beyond the radius are
// allowed, missing a true positive is not. Callers layer exact haversine
// filtering and ordering on top.
//
// The PostGIS-backed implementation delegates containment to the database;
// the in-memory fallback scans the repository and prunes with a bounding box
// in application code. Behavior for well-formed coordinates is identical
// regardless of backend.
type SpatialIndex interface {
	// QueryNear returns candidate events around center. The filter's
	// non-spatial predicates (category, time window) are applied exactly.
	QueryNear(ctx context.Context, center entity.Coordinate, radiusKm float64, filter repository.EventFilter) ([]*entity.Event, error)
}
