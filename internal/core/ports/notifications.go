package ports

import (
	"context"

	"logipeek/internal/core/domain/model/kernel"
)

// Notification kinds emitted by the order lifecycle. The kind is a stable
// machine-readable tag; title and message are display text for the recipient.
const (
	NotificationOrderAccepted  = "order_accepted"
	NotificationOrderPickedUp  = "order_picked_up"
	NotificationOrderInTransit = "order_in_transit"
	NotificationOrderDelivered = "order_delivered"
	NotificationOrderCompleted = "order_completed"
	NotificationOrderCancelled = "order_cancelled"
	NotificationOrderReopened  = "order_reopened"
	NotificationClaimRevoked   = "claim_revoked"
)

// Notification is a message for one platform user about one order.
type Notification struct {
	UserID  kernel.UUID
	OrderID kernel.UUID
	Kind    string
	Title   string
	Message string
}

// NotificationService delivers lifecycle notifications to users.
// Delivery itself (push, email, in-app) is outside the engine; the contract
// only guarantees the notification is durably recorded for the recipient.
type NotificationService interface {
	// Notify records one notification for its recipient.
	Notify(ctx context.Context, notification Notification) error
}
