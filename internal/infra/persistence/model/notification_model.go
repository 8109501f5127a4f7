package model

import (
	"time"

	"github.com/google/uuid"
)

// EventNotificationModel is the GORM-specific struct for the
// 'event_notifications' table. The composite unique index is what makes the
// sweep idempotent: a second insert for the same (user, event, type) is
// rejected by the database regardless of how many sweepers race.
type EventNotificationModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_event_notifications_user_event_type;index:idx_event_notifications_user_sent"`
	EventID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_event_notifications_user_event_type"`
	Type    string    `gorm:"type:text;not null;uniqueIndex:ux_event_notifications_user_event_type"`
	Payload []byte    `gorm:"type:jsonb;not null"`
	SentAt  time.Time `gorm:"not null;index:idx_event_notifications_user_sent,sort:desc"`
	IsRead  bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (EventNotificationModel) TableName() string {
	return "event_notifications"
}
