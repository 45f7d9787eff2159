package commands

import (
	"context"
	"fmt"
	"time"

	"logipeek/internal/core/domain/model/order"
	"logipeek/internal/core/ports"
)

// MarkInTransitCommandHandler records the start of transit for an order.
// Moves the order from Pickup to Transit and notifies the shipper.
type MarkInTransitCommandHandler struct {
	uowFactory TrackingUoWFactory
	now        func() time.Time
}

// NewMarkInTransitCommandHandler creates a handler for transit reports.
func NewMarkInTransitCommandHandler(uowFactory TrackingUoWFactory, now func() time.Time) MarkInTransitCommandHandler {
	return MarkInTransitCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the transit report.
// Only the claiming driver may report transit; anyone else gets
// order.ErrNotOwner and the order is left untouched.
func (h MarkInTransitCommandHandler) Handle(ctx context.Context, command MarkInTransitCommand) (*order.Order, error) {
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

	transitAt := h.now()
	if err = aggregate.MarkInTransit(command.DriverID(), transitAt); err != nil {
		return nil, err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	entry, err := order.NewHistoryEntry(aggregate.ID(), order.Transit, "cargo in transit", transitAt)
	if err != nil {
		return nil, err
	}
	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Notifications().Notify(ctx, ports.Notification{
		UserID:  aggregate.Shipper(),
		OrderID: aggregate.ID(),
		Kind:    ports.NotificationOrderInTransit,
		Title:   "Cargo in transit",
		Message: fmt.Sprintf("Order %s is on its way to the dropoff point", aggregate.OrderNumber()),
	}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
