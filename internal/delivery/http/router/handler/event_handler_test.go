package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	mockUC "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSearchHandlerTest(t *testing.T) (*EventHandler, *mockUC.MockEventSearchUsecase) {
	t.Helper()

	searchUC := mockUC.NewMockEventSearchUsecase(t)
	h := NewEventHandler(EventHandlerParams{
		SearchUC: searchUC,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, searchUC
}

func performSearch(t *testing.T, h *EventHandler, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SearchEvents(c))

	return rec
}

func TestEventHandler_SearchEvents_ParsesQuery(t *testing.T) {
	h, searchUC := newSearchHandlerTest(t)

	categoryID := uuid.New()
	var captured *usecase.SearchEventsInput

	searchUC.EXPECT().
		SearchEvents(mock.Anything, mock.AnythingOfType("*usecase.SearchEventsInput")).
		Run(func(_ context.Context, input *usecase.SearchEventsInput) {
			captured = input
		}).
		Return([]*entity.EventWithDistance{}, nil)

	rec := performSearch(t, h, "/events?lat=-1.9441&lon=30.0619&radius_km=5&limit=10&offset=3&category_id="+categoryID.String())
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, captured)
	require.NotNil(t, captured.Center)
	assert.InDelta(t, -1.9441, captured.Center.Latitude, 1e-9)
	assert.InDelta(t, 30.0619, captured.Center.Longitude, 1e-9)
	require.NotNil(t, captured.RadiusKm)
	assert.InDelta(t, 5.0, *captured.RadiusKm, 1e-9)
	require.NotNil(t, captured.CategoryID)
	assert.Equal(t, categoryID, *captured.CategoryID)
	assert.Equal(t, 10, captured.Limit)
	assert.Equal(t, 3, captured.Offset)
}

func TestEventHandler_SearchEvents_RejectsMalformedQuery(t *testing.T) {
	testCases := []struct {
		name   string
		target string
	}{
		{name: "non-numeric lat", target: "/events?lat=abc&lon=30"},
		{name: "lon without lat", target: "/events?lon=30.0619"},
		{name: "bad radius", target: "/events?lat=-1.9&lon=30&radius_km=five"},
		{name: "bad category", target: "/events?category_id=not-a-uuid"},
		{name: "bad start_after", target: "/events?start_after=yesterday"},
		{name: "bad limit", target: "/events?limit=ten"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, _ := newSearchHandlerTest(t)

			rec := performSearch(t, h, tc.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body domainerrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		})
	}
}

func TestEventHandler_SearchEvents_MapsDomainError(t *testing.T) {
	h, searchUC := newSearchHandlerTest(t)

	searchUC.EXPECT().
		SearchEvents(mock.Anything, mock.AnythingOfType("*usecase.SearchEventsInput")).
		Return(nil, domainerrors.ErrInvalidPagination)

	rec := performSearch(t, h, "/events?offset=-1")
	assert.Equal(t, domainerrors.ErrInvalidPagination.HTTPCode(), rec.Code)

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, domainerrors.ErrInvalidPagination.ErrorCode(), body.Error.Code)
}
