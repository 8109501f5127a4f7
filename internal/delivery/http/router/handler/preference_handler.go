package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/domain/entity"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PreferenceHandlerParams holds dependencies for PreferenceHandler, injected by Fx.
type PreferenceHandlerParams struct {
	fx.In

	PreferenceUC usecase.PreferenceUsecase
	Logger       *slog.Logger
}

// PreferenceHandler holds dependencies for notification preference handlers
type PreferenceHandler struct {
	preferenceUC usecase.PreferenceUsecase
	logger       *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler
func NewPreferenceHandler(params PreferenceHandlerParams) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUC: params.PreferenceUC,
		logger:       params.Logger,
	}
}

// UpdatePreferenceRequest represents the request body for replacing the
// caller's notification preference
type UpdatePreferenceRequest struct {
	RadiusKm    float64     `json:"radius_km" validate:"required,gt=0"`
	CategoryIDs []uuid.UUID `json:"category_ids"`
}

// UpdateHomeLocationRequest represents the request body for setting the
// caller's home coordinate
type UpdateHomeLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// GetPreference handles retrieving the caller's preference
func (h *PreferenceHandler) GetPreference(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_USER", "X-User-Id header is required")
	}

	preference, err := h.preferenceUC.GetPreference(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preference)
}

// UpdatePreference handles replacing the caller's preference
func (h *PreferenceHandler) UpdatePreference(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_USER", "X-User-Id header is required")
	}

	var req UpdatePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	preference, err := h.preferenceUC.UpdatePreference(c.Request().Context(), userID, &usecase.UpdatePreferenceInput{
		RadiusKm:    req.RadiusKm,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preference)
}

// UpdateHomeLocation handles setting the caller's home coordinate
func (h *PreferenceHandler) UpdateHomeLocation(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_USER", "X-User-Id header is required")
	}

	var req UpdateHomeLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid home location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	coordinate := entity.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	if err := h.preferenceUC.UpdateHomeLocation(c.Request().Context(), userID, coordinate); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Home location updated"})
}
