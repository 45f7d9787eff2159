package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"logipeek/internal/core/domain/model/order"
	"logipeek/internal/core/ports"
)

// ReopenStaleClaimsCommandHandler returns Accepted orders whose driver never
// collected the cargo within the pickup TTL back to the Pending pool. The
// displaced driver is released to Online and both parties are notified.
// Each order is processed in its own transaction: one failure is logged and
// skipped, the rest of the batch still goes through. Re-running the sweep is
// harmless because a reopened order no longer matches the Accepted selection.
//
// Example:
//
//	handler := NewReopenStaleClaimsCommandHandler(uowFactory, 2*time.Hour, logger)
//	cmd, _ := NewReopenStaleClaimsCommand(time.Now())
//	reopened, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("pickup sweep failed: %w", err)
//	}
//	log.Printf("reopened %d stale claims", reopened)
type ReopenStaleClaimsCommandHandler struct {
	uowFactory UoWFactory
	ttl        time.Duration
	logger     *slog.Logger
}

// NewReopenStaleClaimsCommandHandler creates a handler for the expired-pickup
// sweep. ttl is how long a claim may sit without pickup before it is revoked.
func NewReopenStaleClaimsCommandHandler(
	uowFactory UoWFactory,
	ttl time.Duration,
	logger *slog.Logger,
) ReopenStaleClaimsCommandHandler {
	return ReopenStaleClaimsCommandHandler{
		uowFactory: uowFactory,
		ttl:        ttl,
		logger:     logger,
	}
}

// Handle runs one sweep and returns how many claims it reopened.
// The selection is a non-transactional read; each selected order is then
// reopened in an isolated transaction so a poison order cannot block the
// batch.
func (h ReopenStaleClaimsCommandHandler) Handle(ctx context.Context, command ReopenStaleClaimsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	cutoff := command.AsOf().Add(-h.ttl)
	orders, err := h.uowFactory.Create().OrderRepository().GetAllAcceptedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	reopened := 0
	for _, aggregate := range orders {
		if err := h.reopenOrder(ctx, aggregate, command.AsOf()); err != nil {
			if errors.Is(err, order.ErrConcurrentTransition) {
				// The driver reached the pickup point after the selection
				// ran. The claim stands, the sweep moves on.
				h.logger.Info("skipped stale claim: order progressed concurrently",
					"order_id", aggregate.ID().String())
				continue
			}
			h.logger.Error("failed to reopen stale claim",
				"order_id", aggregate.ID().String(),
				"error", err)
			continue
		}
		reopened++
	}

	return reopened, nil
}

// reopenOrder revokes one stale claim: the order returns to Pending, the
// displaced driver is released to Online, the ledger records the reopening
// and both parties are notified, all within one transaction.
func (h ReopenStaleClaimsCommandHandler) reopenOrder(
	ctx context.Context,
	aggregate *order.Order,
	asOf time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	displacedDriver := *aggregate.Driver()
	if err := aggregate.Reopen(); err != nil {
		return err
	}

	// The selection ran outside this transaction, so the write carries a
	// status guard. A pickup that committed in between leaves zero rows
	// matching and the claim is left alone.
	if err := uow.OrderRepository().UpdateIfStatus(ctx, aggregate, order.Accepted); err != nil {
		return err
	}

	driverRepo := uow.DriverRepository()
	profile, err := driverRepo.Get(ctx, displacedDriver)
	if err != nil {
		return err
	}
	profile.ReleaseTrip()
	if err = driverRepo.Update(ctx, profile); err != nil {
		return err
	}

	note := fmt.Sprintf("reopened: driver did not pick up within %dh", int(h.ttl.Hours()))
	entry, err := order.NewHistoryEntry(aggregate.ID(), order.Pending, note, asOf)
	if err != nil {
		return err
	}
	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return err
	}

	notifier := uow.Notifications()
	if err = notifier.Notify(ctx, ports.Notification{
		UserID:  aggregate.Shipper(),
		OrderID: aggregate.ID(),
		Kind:    ports.NotificationOrderReopened,
		Title:   "Order reopened",
		Message: fmt.Sprintf("Order %s is looking for a driver again", aggregate.OrderNumber()),
	}); err != nil {
		return err
	}
	if err = notifier.Notify(ctx, ports.Notification{
		UserID:  displacedDriver,
		OrderID: aggregate.ID(),
		Kind:    ports.NotificationClaimRevoked,
		Title:   "Claim revoked",
		Message: fmt.Sprintf("Your claim on order %s was revoked because the cargo was not collected in time", aggregate.OrderNumber()),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
