package commands

import (
	"context"
	"fmt"
	"time"

	"logipeek/internal/core/domain/model/order"
	"logipeek/internal/core/domain/services"
	"logipeek/internal/core/ports"
)

// ClaimOrderCommandHandler orchestrates the claim of a pending order.
// Checks driver eligibility first, then decides the claim through a single
// conditional write so that exactly one of several concurrent claimers wins.
//
// Example:
//
//	handler := NewClaimOrderCommandHandler(uowFactory, time.Now)
//	cmd, _ := NewClaimOrderCommand(orderID, driverID)
//	claimed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrAlreadyClaimed):
//	    log.Println("Another driver got there first")
//	case errors.Is(err, driver.ErrLicensePendingReview):
//	    log.Println("License still under review")
//	case err != nil:
//	    log.Printf("Claim failed: %v", err)
//	default:
//	    log.Printf("Order %s claimed", claimed.OrderNumber())
//	}
type ClaimOrderCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewClaimOrderCommandHandler creates a handler for order claim operations.
// Requires a UoWFactory for coordinating updates across the order and driver
// aggregates and a clock function for the acceptance timestamp.
func NewClaimOrderCommandHandler(uowFactory UoWFactory, now func() time.Time) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the claim command.
//
// The eligibility gate runs before the order is touched, so an ineligible
// driver never affects order state. The race between concurrent claimers is
// decided by OrderRepository.UpdateIfPending: the write applies only where
// the stored row is still Pending, and losing it yields
// order.ErrAlreadyClaimed with the order unchanged.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, command ClaimOrderCommand) (*order.Order, error) {
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

	driverRepo := uow.DriverRepository()
	ordersRepo := uow.OrderRepository()

	profile, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return nil, err
	}

	if err = services.NewLicenseGate().Check(profile); err != nil {
		return nil, err
	}

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	claimedAt := h.now()
	if err = aggregate.Claim(command.DriverID(), claimedAt); err != nil {
		return nil, err
	}

	if err = ordersRepo.UpdateIfPending(ctx, aggregate); err != nil {
		return nil, err
	}

	profile.BeginTrip()
	if err = driverRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	entry, err := order.NewHistoryEntry(aggregate.ID(), order.Accepted, "claimed by driver", claimedAt)
	if err != nil {
		return nil, err
	}
	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	notifier := uow.Notifications()
	if err = notifier.Notify(ctx, ports.Notification{
		UserID:  aggregate.Shipper(),
		OrderID: aggregate.ID(),
		Kind:    ports.NotificationOrderAccepted,
		Title:   "Driver found",
		Message: fmt.Sprintf("A driver claimed order %s", aggregate.OrderNumber()),
	}); err != nil {
		return nil, err
	}
	if err = notifier.Notify(ctx, ports.Notification{
		UserID:  command.DriverID(),
		OrderID: aggregate.ID(),
		Kind:    ports.NotificationOrderAccepted,
		Title:   "Claim confirmed",
		Message: fmt.Sprintf("You claimed order %s, head to the pickup point", aggregate.OrderNumber()),
	}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
