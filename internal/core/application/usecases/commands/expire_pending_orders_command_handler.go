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

// ExpirePendingOrdersCommandHandler cancels Pending orders that no driver
// claimed within the pending TTL. Each order is processed in its own
// transaction: one failure is logged and skipped, the rest of the batch
// still goes through. Re-running the sweep is harmless because a cancelled
// order no longer matches the Pending selection.
//
// Example:
//
//	handler := NewExpirePendingOrdersCommandHandler(uowFactory, 24*time.Hour, logger)
//	cmd, _ := NewExpirePendingOrdersCommand(time.Now())
//	cancelled, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("pending sweep failed: %w", err)
//	}
//	log.Printf("cancelled %d expired orders", cancelled)
type ExpirePendingOrdersCommandHandler struct {
	uowFactory UoWFactory
	ttl        time.Duration
	logger     *slog.Logger
}

// NewExpirePendingOrdersCommandHandler creates a handler for the
// expired-pending sweep. ttl is how long an order may stay Pending before it
// is cancelled.
func NewExpirePendingOrdersCommandHandler(
	uowFactory UoWFactory,
	ttl time.Duration,
	logger *slog.Logger,
) ExpirePendingOrdersCommandHandler {
	return ExpirePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		ttl:        ttl,
		logger:     logger,
	}
}

// Handle runs one sweep and returns how many orders it cancelled.
// The selection is a non-transactional read; each selected order is then
// cancelled in an isolated transaction so a poison order cannot block the
// batch.
func (h ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, command ExpirePendingOrdersCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	cutoff := command.AsOf().Add(-h.ttl)
	orders, err := h.uowFactory.Create().OrderRepository().GetAllPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, aggregate := range orders {
		if err := h.cancelOrder(ctx, aggregate, command.AsOf()); err != nil {
			if errors.Is(err, order.ErrConcurrentTransition) {
				// A driver claimed the order after the selection ran.
				// The claim stands, the sweep moves on.
				h.logger.Info("skipped expired order: claimed concurrently",
					"order_id", aggregate.ID().String())
				continue
			}
			h.logger.Error("failed to cancel expired order",
				"order_id", aggregate.ID().String(),
				"error", err)
			continue
		}
		cancelled++
	}

	return cancelled, nil
}

// cancelOrder cancels one expired order, appends the ledger entry and
// notifies the shipper, all within its own transaction.
func (h ExpirePendingOrdersCommandHandler) cancelOrder(
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

	if err := aggregate.Cancel(asOf); err != nil {
		return err
	}

	// The selection ran outside this transaction, so the write carries a
	// status guard. A claim that committed in between leaves zero rows
	// matching and the cancellation is abandoned.
	if err := uow.OrderRepository().UpdateIfStatus(ctx, aggregate, order.Pending); err != nil {
		return err
	}

	note := fmt.Sprintf("auto-cancelled: no driver found within %dh", int(h.ttl.Hours()))
	entry, err := order.NewHistoryEntry(aggregate.ID(), order.Cancelled, note, asOf)
	if err != nil {
		return err
	}
	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return err
	}

	if err = uow.Notifications().Notify(ctx, ports.Notification{
		UserID:  aggregate.Shipper(),
		OrderID: aggregate.ID(),
		Kind:    ports.NotificationOrderCancelled,
		Title:   "Order cancelled",
		Message: fmt.Sprintf("Order %s was cancelled because no driver claimed it in time", aggregate.OrderNumber()),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
