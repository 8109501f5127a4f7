// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"beacon/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXUserID carries the caller's identity. Authentication happens at the
// gateway in front of this service; the header is trusted as-is here.
const HeaderXUserID = "X-User-Id"

// requestUserID extracts the caller's user ID from the request headers.
func requestUserID(c echo.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Request().Header.Get(HeaderXUserID))
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
