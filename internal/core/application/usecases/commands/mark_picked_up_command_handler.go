package commands

import (
	"context"
	"fmt"
	"time"

	"logipeek/internal/core/domain/model/order"
	"logipeek/internal/core/ports"
)

// MarkPickedUpCommandHandler records cargo collection by the claiming driver.
// Moves the order from Accepted to Pickup and notifies the shipper.
type MarkPickedUpCommandHandler struct {
	uowFactory TrackingUoWFactory
	now        func() time.Time
}

// NewMarkPickedUpCommandHandler creates a handler for pickup reports.
func NewMarkPickedUpCommandHandler(uowFactory TrackingUoWFactory, now func() time.Time) MarkPickedUpCommandHandler {
	return MarkPickedUpCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the pickup report.
// Only the claiming driver may report pickup; anyone else gets
// order.ErrNotOwner and the order is left untouched.
func (h MarkPickedUpCommandHandler) Handle(ctx context.Context, command MarkPickedUpCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	pickedUpAt := h.now()
	if err = aggregate.MarkPickedUp(command.DriverID(), pickedUpAt); err != nil {
		return nil, err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	entry, err := order.NewHistoryEntry(aggregate.ID(), order.Pickup, "cargo collected", pickedUpAt)
	if err != nil {
		return nil, err
	}
	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Notifications().Notify(ctx, ports.Notification{
		UserID:  aggregate.Shipper(),
		OrderID: aggregate.ID(),
		Kind:    ports.NotificationOrderPickedUp,
		Title:   "Cargo collected",
		Message: fmt.Sprintf("The driver collected the cargo for order %s", aggregate.OrderNumber()),
	}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
