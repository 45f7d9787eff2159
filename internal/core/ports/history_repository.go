package ports

import (
	"context"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/core/domain/model/order"
)

// HistoryRepository defines the persistence contract for the append-only
// status ledger. Entries are only ever appended; there is no update or
// delete operation on this contract by design of the audit trail.
type HistoryRepository interface {
	// Append persists one ledger entry for a status transition.
	Append(ctx context.Context, entry order.HistoryEntry) error

	// GetForOrder retrieves all ledger entries for an order, oldest first.
	GetForOrder(ctx context.Context, orderID kernel.UUID) ([]order.HistoryEntry, error)
}
