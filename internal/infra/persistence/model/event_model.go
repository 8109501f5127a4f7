// Package model contains the GORM-specific table mappings.
package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel is the GORM-specific struct for the 'events' table.
type EventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text"`
	Latitude    float64   `gorm:"type:decimal(10,8);not null"`
	Longitude   float64   `gorm:"type:decimal(11,8);not null"`
	// Note: location GEOGRAPHY(POINT, 4326) column exists in database but is not mapped here.
	// It is automatically calculated from Latitude/Longitude via database trigger.
	// Use raw SQL queries with PostGIS functions (ST_Distance, ST_DWithin) for geospatial operations.
	Address         string    `gorm:"type:text"`
	CategoryID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatorID       uuid.UUID `gorm:"type:uuid;not null;index"`
	StartTime       time.Time `gorm:"not null;index"`
	EndTime         time.Time `gorm:"not null"`
	MaxParticipants *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// EventParticipantModel is the GORM-specific struct for the 'event_participants' table.
type EventParticipantModel struct {
	EventID      uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Status       string    `gorm:"type:text;not null;default:'registered'"`
	RegisteredAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventParticipantModel) TableName() string {
	return "event_participants"
}
