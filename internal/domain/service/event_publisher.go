package service

import (
	"context"
	"time"
)

// ReminderMessage is the payload published to the notification channel after
// a reminder record has been persisted. Delivery (push, e-mail, websocket) is
// handled by an external consumer and is out of scope here.
type ReminderMessage struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string    `json:"notification_id"`
	EventID        string    `json:"event_id"`
	UserID         string    `json:"user_id"`
	Title          string    `json:"title"`
	StartTime      time.Time `json:"start_time"`
	CategoryName   string    `json:"category_name"` // Localized to the user's preferred language.
	DistanceKm     float64   `json:"distance_km"`   // Rounded to one decimal.
}

// EventCreatedMessage announces a freshly created event on the channel.
type EventCreatedMessage struct {
	RequestID string    `json:"request_id,omitempty"`
	EventID   string    `json:"event_id"`
	Title     string    `json:"title"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	StartTime time.Time `json:"start_time"`
}

// EventPublisher defines the interface for publishing messages to an external
// message channel. Publishing either succeeds or fails with a recoverable
// error within a bounded time; it never blocks indefinitely. Publish failures
// are non-fatal to callers: a persisted notification stays sent.
type EventPublisher interface {
	// PublishReminder publishes a reminder for async delivery.
	PublishReminder(ctx context.Context, message *ReminderMessage) error

	// PublishEventCreated announces a new event.
	PublishEventCreated(ctx context.Context, message *EventCreatedMessage) error

	// Close releases any resources held by the publisher.
	Close() error
}
