package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"beacon/internal/delivery/http/response"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for notification history handlers
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// GetNotificationHistory handles listing the caller's notifications, newest first
func (h *NotificationHandler) GetNotificationHistory(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_USER", "X-User-Id header is required")
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "limit must be an integer")
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "offset must be an integer")
	}

	entries, err := h.notificationUC.GetNotificationHistory(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// MarkRead handles flagging one of the caller's notifications as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := requestUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_USER", "X-User-Id header is required")
	}

	notificationID, err := uuid.Parse(c.Param("notificationId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	return strconv.Atoi(raw)
}
