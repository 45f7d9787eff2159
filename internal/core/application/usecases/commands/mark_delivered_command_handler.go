package commands

import (
	"context"
	"fmt"
	"time"

	"logipeek/internal/core/domain/model/order"
	"logipeek/internal/core/ports"
)

// MarkDeliveredCommandHandler records delivery of the cargo.
// Moves the order from Transit to Delivered and asks the shipper to confirm.
//
// Example:
//
//	handler := NewMarkDeliveredCommandHandler(uowFactory, time.Now)
//	cmd, _ := NewMarkDeliveredCommand(orderID, driverID)
//	delivered, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrNotOwner):
//	    log.Println("Only the claiming driver can report delivery")
//	case errors.Is(err, order.ErrInvalidTransition):
//	    log.Println("Order is not in transit")
//	case err != nil:
//	    log.Printf("Delivery report failed: %v", err)
//	default:
//	    log.Printf("Order %s delivered", delivered.OrderNumber())
//	}
type MarkDeliveredCommandHandler struct {
	uowFactory TrackingUoWFactory
	now        func() time.Time
}

// NewMarkDeliveredCommandHandler creates a handler for delivery reports.
func NewMarkDeliveredCommandHandler(uowFactory TrackingUoWFactory, now func() time.Time) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the delivery report.
// Only the claiming driver may report delivery, and only from Transit; the
// delivered order stays assigned to the driver until the shipper confirms.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, command MarkDeliveredCommand) (*order.Order, error) {
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

	deliveredAt := h.now()
	if err = aggregate.MarkDelivered(command.DriverID(), deliveredAt); err != nil {
		return nil, err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	entry, err := order.NewHistoryEntry(aggregate.ID(), order.Delivered, "cargo delivered", deliveredAt)
	if err != nil {
		return nil, err
	}
	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Notifications().Notify(ctx, ports.Notification{
		UserID:  aggregate.Shipper(),
		OrderID: aggregate.ID(),
		Kind:    ports.NotificationOrderDelivered,
		Title:   "Cargo delivered",
		Message: fmt.Sprintf("Order %s was delivered, please confirm receipt", aggregate.OrderNumber()),
	}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
