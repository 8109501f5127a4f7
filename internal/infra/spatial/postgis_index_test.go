package spatial

import (
	"strings"
	"testing"
	"time"

	"beacon/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNearQuery_WidensRadiusForSpheroid(t *testing.T) {
	query, args := buildNearQuery(kigali, 10.0, repository.EventFilter{})

	assert.Contains(t, query, "ST_DWithin")
	require.Len(t, args, 3)
	assert.Equal(t, kigali.Longitude, args[0])
	assert.Equal(t, kigali.Latitude, args[1])

	// The SQL radius must exceed the requested one so the spheroid distance
	// used by ST_DWithin cannot drop events the great-circle check keeps.
	meters, ok := args[2].(float64)
	require.True(t, ok)
	assert.Greater(t, meters, 10.0*1000)
	assert.InDelta(t, 10.0*1000*spheroidSlack, meters, 1e-9)
}

func TestBuildNearQuery_AppendsFilterPredicates(t *testing.T) {
	categoryID := uuid.New()
	startAfter := time.Now()
	endBefore := startAfter.Add(24 * time.Hour)

	query, args := buildNearQuery(kigali, 5.0, repository.EventFilter{
		CategoryID: &categoryID,
		StartAfter: &startAfter,
		EndBefore:  &endBefore,
	})

	assert.Contains(t, query, "AND e.category_id = ?")
	assert.Contains(t, query, "AND e.start_time >= ?")
	assert.Contains(t, query, "AND e.end_time <= ?")
	assert.True(t, strings.HasSuffix(query, "ORDER BY e.start_time ASC, e.id ASC"))

	require.Len(t, args, 6)
	assert.Equal(t, categoryID, args[3])
	assert.Equal(t, startAfter, args[4])
	assert.Equal(t, endBefore, args[5])
}
