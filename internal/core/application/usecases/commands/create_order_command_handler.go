package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for posting a shipment.
// Assigns the order number, creates the order in Pending status and writes
// the opening ledger entry.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, time.Now)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), shipperID, pickup, dropoff,
//	    80, order.VehicleMotorbike, "", 50000, order.PaymentTransfer)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now visible to eligible drivers
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order posting operations.
// Requires an OrderUoWFactory for transactional persistence and a clock
// function for the posting timestamp.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the order posting command.
// Creates the order in Pending status together with its opening ledger entry
// inside one transaction and returns the created aggregate.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	createdAt := h.now()

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		newOrderNumber(cmd.OrderID(), createdAt),
		cmd.ShipperID(),
		cmd.Pickup(),
		cmd.Dropoff(),
		cmd.WeightKg(),
		cmd.VehicleType(),
		cmd.Description(),
		cmd.EstimatedPrice(),
		cmd.PaymentMethod(),
		createdAt,
	)
	if err != nil {
		return nil, err
	}

	entry, err := order.NewHistoryEntry(aggregate.ID(), order.Pending, "order posted", createdAt)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// newOrderNumber derives the human-readable business key from the posting
// date and the order ID, e.g. "LP-20260829-9F2C1A40".
func newOrderNumber(orderID kernel.UUID, createdAt time.Time) string {
	return fmt.Sprintf("LP-%s-%s",
		createdAt.UTC().Format("20060102"),
		strings.ToUpper(orderID.String()[:8]))
}
