package ports

import (
	"context"
	"time"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying shipment orders
// based on their status and staleness.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateIfPending persists a claimed order conditionally: the write
	// applies only where the stored row is still in Pending status. When
	// zero rows are affected the claim was lost to a concurrent caller and
	// order.ErrAlreadyClaimed is returned.
	//
	// This is the single write through which the claim race is decided;
	// callers must never substitute a read-check-then-Update sequence.
	UpdateIfPending(ctx context.Context, aggregate *order.Order) error

	// UpdateIfStatus persists an order conditionally: the write applies only
	// where the stored row is still in the given status. When zero rows are
	// affected the order transitioned concurrently since it was read and
	// order.ErrConcurrentTransition is returned; the caller must discard the
	// stale aggregate. Used by the maintenance sweeps, whose selections run
	// outside the per-order transaction.
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, current order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingCreatedBefore retrieves all Pending orders posted before
	// the cutoff. Used by the expired-pending sweep.
	GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// GetAllAcceptedBefore retrieves all Accepted orders claimed before the
	// cutoff. Used by the expired-pickup sweep.
	GetAllAcceptedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
