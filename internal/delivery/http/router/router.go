// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"beacon/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router wires up, injected by Fx.
type RouterParams struct {
	fx.In

	EventHandler        *handler.EventHandler
	PreferenceHandler   *handler.PreferenceHandler
	NotificationHandler *handler.NotificationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	eventHandler        *handler.EventHandler
	preferenceHandler   *handler.PreferenceHandler
	notificationHandler *handler.NotificationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		eventHandler:        params.EventHandler,
		preferenceHandler:   params.PreferenceHandler,
		notificationHandler: params.NotificationHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.GET("/categories", r.eventHandler.ListCategories)

	eventGroup := e.Group("/events")
	{
		eventGroup.GET("", r.eventHandler.SearchEvents)
		eventGroup.POST("", r.eventHandler.CreateEvent)
		eventGroup.GET("/:eventId", r.eventHandler.GetEvent)
		eventGroup.PATCH("/:eventId", r.eventHandler.UpdateEvent)
		eventGroup.DELETE("/:eventId", r.eventHandler.DeleteEvent)
		eventGroup.POST("/:eventId/participants", r.eventHandler.RegisterParticipant)
		eventGroup.DELETE("/:eventId/participants", r.eventHandler.UnregisterParticipant)
	}

	meGroup := e.Group("/users/me")
	{
		meGroup.GET("/preference", r.preferenceHandler.GetPreference)
		meGroup.PUT("/preference", r.preferenceHandler.UpdatePreference)
		meGroup.PUT("/home-location", r.preferenceHandler.UpdateHomeLocation)
		meGroup.GET("/notifications", r.notificationHandler.GetNotificationHistory)
		meGroup.POST("/notifications/:notificationId/read", r.notificationHandler.MarkRead)
	}
}
