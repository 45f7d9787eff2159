package commands

import (
	"context"
	"fmt"
	"time"

	"logipeek/internal/core/domain/model/order"
	"logipeek/internal/core/ports"
	"logipeek/internal/pkg/errs"
)

// ConfirmDeliveryCommandHandler finalizes an order after the shipper verified
// delivery. Completes the order, settles the price, and folds the outcome
// into the driver's profile within a single transaction.
//
// Example:
//
//	handler := NewConfirmDeliveryCommandHandler(uowFactory, time.Now)
//	rating := 5
//	cmd, _ := NewConfirmDeliveryCommand(orderID, shipperID, &rating)
//	completed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrNotOwner):
//	    log.Println("Only the posting shipper can confirm")
//	case errors.Is(err, errs.ErrPartialCompletion):
//	    log.Println("Driver stats could not be updated, nothing was committed")
//	case err != nil:
//	    log.Printf("Confirmation failed: %v", err)
//	default:
//	    log.Printf("Order %s completed at %d", completed.OrderNumber(), *completed.FinalPrice())
//	}
type ConfirmDeliveryCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
// Requires a UoWFactory for coordinating updates across the order and driver
// aggregates and a clock function for the completion timestamp.
func NewConfirmDeliveryCommandHandler(uowFactory UoWFactory, now func() time.Time) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the confirmation command.
//
// The order completion and the driver profile update share one transaction:
// either both land or neither does. When the driver side fails after the
// order was already completed in the transaction, the error is wrapped in
// errs.PartialCompletionError and the whole transaction rolls back.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, command ConfirmDeliveryCommand) (*order.Order, error) {
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

	completedAt := h.now()
	if err = aggregate.Confirm(command.ShipperID(), command.Rating(), completedAt); err != nil {
		return nil, err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = h.completeDriverTrip(ctx, uow, aggregate, command.Rating()); err != nil {
		return nil, errs.NewPartialCompletionError("confirm delivery", aggregate.ID().String(), err)
	}

	entry, err := order.NewHistoryEntry(aggregate.ID(), order.Completed, "delivery confirmed by shipper", completedAt)
	if err != nil {
		return nil, err
	}
	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Notifications().Notify(ctx, ports.Notification{
		UserID:  *aggregate.Driver(),
		OrderID: aggregate.ID(),
		Kind:    ports.NotificationOrderCompleted,
		Title:   "Delivery confirmed",
		Message: fmt.Sprintf("The shipper confirmed order %s, your earnings were updated", aggregate.OrderNumber()),
	}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// completeDriverTrip folds the confirmed delivery into the driver's profile:
// trip count, earnings from the settled price, running average rating, and
// availability back to Online.
func (h ConfirmDeliveryCommandHandler) completeDriverTrip(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	rating *int,
) error {
	driverRepo := uow.DriverRepository()

	profile, err := driverRepo.Get(ctx, *aggregate.Driver())
	if err != nil {
		return err
	}

	if err = profile.CompleteTrip(*aggregate.FinalPrice(), rating); err != nil {
		return err
	}

	return driverRepo.Update(ctx, profile)
}
