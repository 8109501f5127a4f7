// Package geo implements great-circle distance and bounding-box math for
// proximity queries. Everything here is pure: callers must validate
// coordinates first, malformed input propagates as NaN.
package geo

import (
	"math"

	"beacon/internal/domain/entity"

	"github.com/paulmach/orb"
)

const (
	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0

	// kmPerLatDegree is the length of one degree of latitude. Longitude
	// degrees shrink with cos(latitude) and are corrected per query.
	kmPerLatDegree = 111.0
)

// DistanceKm returns the haversine great-circle distance between two
// coordinates in kilometers.
func DistanceKm(a, b entity.Coordinate) float64 {
	lat1 := degToRad(a.Latitude)
	lat2 := degToRad(b.Latitude)
	dLat := degToRad(b.Latitude - a.Latitude)
	dLon := degToRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// BoundingBox returns a rectangular over-approximation of the circle with the
// given center and radius: every point within radiusKm of center lies inside
// the box, while points inside the box may still be farther than radiusKm.
//
// Latitude is clamped at the poles. The longitude span uses the cos(latitude)
// correction evaluated at the latitude edge closest to a pole, where degrees
// are shortest, so the box always widens rather than narrows. When the span
// would cross the antimeridian or the correction degenerates near a pole, the
// box falls back to the full longitude range; correctness is kept at the cost
// of pruning power.
func BoundingBox(center entity.Coordinate, radiusKm float64) orb.Bound {
	latDelta := radiusKm / kmPerLatDegree

	latMin := center.Latitude - latDelta
	latMax := center.Latitude + latDelta
	if latMin < -90 {
		latMin = -90
	}
	if latMax > 90 {
		latMax = 90
	}

	// Evaluate the correction at the most polar latitude inside the box.
	maxAbsLat := math.Max(math.Abs(latMin), math.Abs(latMax))
	cosLat := math.Cos(degToRad(maxAbsLat))

	lonMin, lonMax := -180.0, 180.0
	if cosLat > 1e-9 {
		lonDelta := radiusKm / (kmPerLatDegree * cosLat)
		if lonDelta < 180 {
			lonMin = center.Longitude - lonDelta
			lonMax = center.Longitude + lonDelta
			if lonMin < -180 || lonMax > 180 {
				// Antimeridian crossing: widen instead of wrapping.
				lonMin, lonMax = -180, 180
			}
		}
	}

	return orb.Bound{
		Min: orb.Point{lonMin, latMin},
		Max: orb.Point{lonMax, latMax},
	}
}

// Contains reports whether the coordinate lies inside the bound, borders
// included.
func Contains(bound orb.Bound, c entity.Coordinate) bool {
	return bound.Contains(c.Point())
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
