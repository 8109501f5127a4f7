package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"beacon/internal/delivery/http/response"
	"beacon/internal/domain/entity"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC  usecase.EventUsecase
	SearchUC usecase.EventSearchUsecase
	Logger   *slog.Logger
}

// EventHandler holds dependencies for event-related handlers
type EventHandler struct {
	eventUC  usecase.EventUsecase
	searchUC usecase.EventSearchUsecase
	logger   *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC:  params.EventUC,
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// CreateEventRequest represents the request body for creating an event
type CreateEventRequest struct {
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description"`
	Latitude        float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude       float64   `json:"longitude" validate:"min=-180,max=180"`
	Address         string    `json:"address"`
	CategoryID      uuid.UUID `json:"category_id" validate:"required"`
	StartTime       time.Time `json:"start_time" validate:"required"`
	EndTime         time.Time `json:"end_time" validate:"required"`
	MaxParticipants *int      `json:"max_participants,omitempty"`
}

// UpdateEventRequest represents the request body for updating an event
type UpdateEventRequest struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Latitude        *float64   `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude       *float64   `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Address         *string    `json:"address,omitempty"`
	CategoryID      *uuid.UUID `json:"category_id,omitempty"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	MaxParticipants *int       `json:"max_participants,omitempty"`
}

// CreateEvent handles creating a new event
func (h *EventHandler) CreateEvent(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_USER", "X-User-Id header is required")
	}

	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	event, err := h.eventUC.CreateEvent(c.Request().Context(), userID, &usecase.CreateEventInput{
		Title:           req.Title,
		Description:     req.Description,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Address:         req.Address,
		CategoryID:      req.CategoryID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		MaxParticipants: req.MaxParticipants,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, event)
}

// SearchEvents handles the event discovery listing
func (h *EventHandler) SearchEvents(c echo.Context) error {
	input, err := parseSearchQuery(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	events, err := h.searchUC.SearchEvents(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events)
}

// GetEvent handles retrieving a single event
func (h *EventHandler) GetEvent(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	event, err := h.eventUC.GetEvent(c.Request().Context(), eventID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event)
}

// UpdateEvent handles a partial event update by its creator
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_USER", "X-User-Id header is required")
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	var req UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	event, err := h.eventUC.UpdateEvent(c.Request().Context(), userID, eventID, &usecase.UpdateEventInput{
		Title:           req.Title,
		Description:     req.Description,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Address:         req.Address,
		CategoryID:      req.CategoryID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		MaxParticipants: req.MaxParticipants,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event)
}

// DeleteEvent handles deleting an event by its creator
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_USER", "X-User-Id header is required")
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	if err := h.eventUC.DeleteEvent(c.Request().Context(), userID, eventID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Event deleted"})
}

// RegisterParticipant handles registering the caller on an event
func (h *EventHandler) RegisterParticipant(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_USER", "X-User-Id header is required")
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	participant, err := h.eventUC.RegisterParticipant(c.Request().Context(), eventID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, participant)
}

// UnregisterParticipant handles removing the caller's registration
func (h *EventHandler) UnregisterParticipant(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_USER", "X-User-Id header is required")
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	if err := h.eventUC.UnregisterParticipant(c.Request().Context(), eventID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Registration removed"})
}

// ListCategories handles listing every event category
func (h *EventHandler) ListCategories(c echo.Context) error {
	categories, err := h.eventUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// parseSearchQuery maps the query string onto a search input. Range checks
// stay in the usecase; only syntax is rejected here.
func parseSearchQuery(c echo.Context) (*usecase.SearchEventsInput, error) {
	input := &usecase.SearchEventsInput{}

	if raw := c.QueryParam("lat"); raw != "" {
		latitude, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("lat must be a number")
		}
		longitude, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
		if err != nil {
			return nil, errors.New("lon must be a number")
		}
		input.Center = &entity.Coordinate{Latitude: latitude, Longitude: longitude}
	} else if c.QueryParam("lon") != "" {
		return nil, errors.New("lon requires lat")
	}

	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("radius_km must be a number")
		}
		input.RadiusKm = &radiusKm
	}

	if raw := c.QueryParam("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("category_id must be a UUID")
		}
		input.CategoryID = &categoryID
	}

	if raw := c.QueryParam("start_after"); raw != "" {
		startAfter, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, errors.New("start_after must be RFC3339")
		}
		input.StartAfter = &startAfter
	}

	if raw := c.QueryParam("end_before"); raw != "" {
		endBefore, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, errors.New("end_before must be RFC3339")
		}
		input.EndBefore = &endBefore
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("limit must be an integer")
		}
		input.Limit = limit
	}

	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("offset must be an integer")
		}
		input.Offset = offset
	}

	return input, nil
}
