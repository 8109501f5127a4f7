// Package constants defines shared domain-level constant values.
package constants

const (
	// EnvDevelop marks the local development environment.
	EnvDevelop = "develop"
	// EnvProduction marks the production environment.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// SpatialBackendPostGIS answers proximity queries with PostGIS radius
	// containment (ST_DWithin) inside the database.
	SpatialBackendPostGIS = "postgis"
	// SpatialBackendMemory answers proximity queries with a repository scan
	// filtered in application code. Slower but requires no geospatial
	// extension; results for well-formed coordinates are identical.
	SpatialBackendMemory = "memory"
)

const (
	// NotificationTypeEventReminder is the record type written by the sweep.
	// At most one record of this type exists per (user, event) pair.
	NotificationTypeEventReminder = "event_reminder"

	// MessageTypeEventCreated tags the channel message announcing a new event.
	MessageTypeEventCreated = "event_created"

	// NotificationTopic is the message-channel topic reminders are published on.
	NotificationTopic = "notifications"
)
