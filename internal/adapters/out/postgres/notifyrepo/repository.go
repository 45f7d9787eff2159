package notifyrepo

import (
	"context"

	"logipeek/internal/core/ports"

	"gorm.io/gorm"
)

// GormNotificationOutbox implements NotificationService by inserting
// outbox rows. When constructed with a transaction handle the insert
// commits or rolls back together with the state change that caused it.
type GormNotificationOutbox struct {
	db *gorm.DB
}

// NewGormNotificationOutbox creates a new GORM notification outbox.
func NewGormNotificationOutbox(db *gorm.DB) *GormNotificationOutbox {
	return &GormNotificationOutbox{db: db}
}

// Notify enqueues a notification for delivery.
func (o *GormNotificationOutbox) Notify(ctx context.Context, notification ports.Notification) error {
	if err := notification.UserID.Validate(); err != nil {
		return err
	}
	if err := notification.OrderID.Validate(); err != nil {
		return err
	}

	dto := fromDomain(notification)
	return o.db.WithContext(ctx).Create(&dto).Error
}
