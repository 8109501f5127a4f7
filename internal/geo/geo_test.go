package geo

import (
	"math"
	"math/rand"
	"testing"

	"beacon/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKm_ZeroForIdenticalPoints(t *testing.T) {
	points := []entity.Coordinate{
		{Latitude: 0, Longitude: 0},
		{Latitude: -1.9441, Longitude: 30.0619},
		{Latitude: 89.9, Longitude: -179.9},
		{Latitude: -45.5, Longitude: 170.2},
	}

	for _, p := range points {
		assert.Zero(t, DistanceKm(p, p))
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		a := entity.Coordinate{
			Latitude:  rng.Float64()*180 - 90,
			Longitude: rng.Float64()*360 - 180,
		}
		b := entity.Coordinate{
			Latitude:  rng.Float64()*180 - 90,
			Longitude: rng.Float64()*360 - 180,
		}

		assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-9)
	}
}

func TestDistanceKm_KnownDistances(t *testing.T) {
	// User home and event location from the Kigali scenario, ~1.2 km apart.
	home := entity.Coordinate{Latitude: -1.9441, Longitude: 30.0619}
	event := entity.Coordinate{Latitude: -1.9500, Longitude: 30.0700}

	d := DistanceKm(home, event)
	assert.InDelta(t, 1.12, d, 0.05)

	// Kigali to Nairobi is roughly 760 km.
	nairobi := entity.Coordinate{Latitude: -1.2921, Longitude: 36.8219}
	assert.InDelta(t, 760, DistanceKm(home, nairobi), 15)
}

func TestDistanceKm_QuarterMeridian(t *testing.T) {
	equator := entity.Coordinate{Latitude: 0, Longitude: 0}
	pole := entity.Coordinate{Latitude: 90, Longitude: 0}

	// A quarter of the mean-radius circumference: 6371 * pi / 2.
	assert.InDelta(t, 6371*math.Pi/2, DistanceKm(equator, pole), 0.5)
}

func TestBoundingBox_NeverExcludesPointsWithinRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	centers := []entity.Coordinate{
		{Latitude: -1.9441, Longitude: 30.0619}, // Kigali
		{Latitude: 0, Longitude: 0},
		{Latitude: 59.33, Longitude: 18.07}, // Stockholm, strong cos shrink
		{Latitude: -41.3, Longitude: 174.8},
	}
	radii := []float64{0.5, 5, 50, 250}

	for _, center := range centers {
		for _, radiusKm := range radii {
			bound := BoundingBox(center, radiusKm)

			accepted := 0
			for i := 0; i < 2000; i++ {
				// Sample offsets in a square generously larger than the
				// radius and keep only true in-circle points.
				latOff := (rng.Float64()*2 - 1) * radiusKm / 50.0
				lonOff := (rng.Float64()*2 - 1) * radiusKm / 50.0
				p := entity.Coordinate{
					Latitude:  center.Latitude + latOff,
					Longitude: center.Longitude + lonOff,
				}
				if p.Validate() != nil {
					continue
				}
				if DistanceKm(center, p) > radiusKm {
					continue
				}
				accepted++

				assert.True(t, Contains(bound, p),
					"point %+v within %.1fkm of %+v excluded by box %+v",
					p, radiusKm, center, bound)
			}
			require.Positive(t, accepted, "sampler produced no in-circle points")
		}
	}
}

func TestBoundingBox_WidensAtAntimeridian(t *testing.T) {
	center := entity.Coordinate{Latitude: 10, Longitude: 179.8}
	bound := BoundingBox(center, 100)

	// The box cannot wrap, so it degrades to the full longitude range and
	// keeps the superset guarantee.
	assert.Equal(t, -180.0, bound.Min.Lon())
	assert.Equal(t, 180.0, bound.Max.Lon())

	across := entity.Coordinate{Latitude: 10, Longitude: -179.9}
	require.Less(t, DistanceKm(center, across), 100.0)
	assert.True(t, Contains(bound, across))
}

func TestBoundingBox_ClampsAtPole(t *testing.T) {
	center := entity.Coordinate{Latitude: 89.5, Longitude: 0}
	bound := BoundingBox(center, 200)

	assert.LessOrEqual(t, bound.Max.Lat(), 90.0)
	assert.Equal(t, -180.0, bound.Min.Lon())
	assert.Equal(t, 180.0, bound.Max.Lon())
}
