package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreferenceModel is the GORM-specific struct for the
// 'notification_preferences' table. One row per user; absence means the
// service-level defaults apply.
type NotificationPreferenceModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	RadiusKm  float64   `gorm:"type:decimal(10,2);not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationPreferenceModel) TableName() string {
	return "notification_preferences"
}

// PreferenceCategoryModel is the GORM-specific struct for the
// 'preference_categories' join table. No rows for a user means the user
// subscribes to every category.
type PreferenceCategoryModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primary_key"`
	CategoryID uuid.UUID `gorm:"type:uuid;primary_key"`
}

// TableName explicitly sets the table name for GORM.
func (PreferenceCategoryModel) TableName() string {
	return "preference_categories"
}
