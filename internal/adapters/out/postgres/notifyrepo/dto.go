// Package notifyrepo records lifecycle notifications in a postgres outbox
// table. Writing the notification in the same transaction as the state
// change guarantees a user is never notified about a transition that rolled
// back, and never misses one that committed. A separate delivery process
// drains the table.
package notifyrepo

import (
	"time"

	"logipeek/internal/core/ports"

	"github.com/google/uuid"
)

// NotificationDTO represents one outbox row in the database.
type NotificationDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Kind      string    `gorm:"type:varchar(64);not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the database table name for outbox rows.
// Overrides GORM's default naming convention to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its outbox representation.
func fromDomain(notification ports.Notification) NotificationDTO {
	return NotificationDTO{
		UserID:  notification.UserID.Bytes(),
		OrderID: notification.OrderID.Bytes(),
		Kind:    notification.Kind,
		Title:   notification.Title,
		Message: notification.Message,
	}
}
