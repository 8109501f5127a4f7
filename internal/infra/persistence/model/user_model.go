package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email             string    `gorm:"type:text;not null;uniqueIndex"`
	Name              string    `gorm:"type:text;not null"`
	PreferredLanguage string    `gorm:"type:varchar(8);not null;default:'en'"`
	// Home location. Nullable: users without a home location never receive
	// proximity reminders. The GEOGRAPHY column mirroring these values is
	// maintained by a database trigger, same as events.location.
	HomeLatitude  *float64 `gorm:"type:decimal(10,8)"`
	HomeLongitude *float64 `gorm:"type:decimal(11,8)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
