// Package spatial provides the SpatialIndex implementations: PostGIS-backed
// radius containment and an in-memory bounding-box fallback.
package spatial

import (
	"context"
	"strings"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postgisIndex answers proximity queries with ST_DWithin inside the database.
// The GEOGRAPHY location column is maintained by trigger from the lat/lon
// columns, so the query is a single index-assisted scan.
type postgisIndex struct {
	db *gorm.DB
}

// NewPostGISIndex is the constructor for postgisIndex.
func NewPostGISIndex(db *gorm.DB) service.SpatialIndex {
	return &postgisIndex{
		db: db,
	}
}

// spheroidSlack widens the SQL radius so the query stays a superset of the
// spherical distance used by the caller. ST_DWithin on geography measures
// meters along the WGS84 spheroid, which can differ from the great-circle
// distance by up to roughly half a percent.
const spheroidSlack = 1.01

// QueryNear returns a candidate superset of the events within radiusKm of
// center, with the filter's non-spatial predicates applied in the same query.
// The caller re-checks each candidate against the exact distance, so slightly
// over-wide containment here is fine and missing an in-radius event is not.
func (idx *postgisIndex) QueryNear(ctx context.Context, center entity.Coordinate, radiusKm float64, filter repository.EventFilter) ([]*entity.Event, error) {
	var eventModels []*model.EventModel

	query, args := buildNearQuery(center, radiusKm, filter)
	if err := idx.db.WithContext(ctx).
		Raw(query, args...).
		Scan(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query events within radius")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, &entity.Event{
			ID:          eventM.ID,
			Title:       eventM.Title,
			Description: eventM.Description,
			Coordinate: entity.Coordinate{
				Latitude:  eventM.Latitude,
				Longitude: eventM.Longitude,
			},
			Address:         eventM.Address,
			CategoryID:      eventM.CategoryID,
			CreatorID:       eventM.CreatorID,
			StartTime:       eventM.StartTime,
			EndTime:         eventM.EndTime,
			MaxParticipants: eventM.MaxParticipants,
			CreatedAt:       eventM.CreatedAt,
			UpdatedAt:       eventM.UpdatedAt,
		})
	}

	return events, nil
}

func buildNearQuery(center entity.Coordinate, radiusKm float64, filter repository.EventFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT e.*
		FROM events e
		WHERE ST_DWithin(
			e.location,
			ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
			?
		)
	`)
	args := []any{center.Longitude, center.Latitude, radiusKm * 1000 * spheroidSlack}

	if filter.CategoryID != nil {
		sb.WriteString(" AND e.category_id = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.StartAfter != nil {
		sb.WriteString(" AND e.start_time >= ?")
		args = append(args, *filter.StartAfter)
	}
	if filter.EndBefore != nil {
		sb.WriteString(" AND e.end_time <= ?")
		args = append(args, *filter.EndBefore)
	}

	sb.WriteString(" ORDER BY e.start_time ASC, e.id ASC")

	return sb.String(), args
}
