package order

import (
	"time"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/pkg/errs"
)

// HistoryEntry is one row of the append-only status ledger kept per order.
// Entries are written alongside every transition and are never mutated or
// deleted; together they reconstruct the full audit trail of an order.
type HistoryEntry struct {
	orderID kernel.UUID
	status  Status
	note    string
	at      time.Time
}

// NewHistoryEntry creates a validated ledger entry for a transition into status.
// The note carries human-readable context such as "reopened: driver did not
// pick up within 2h"; it may be empty for routine transitions.
func NewHistoryEntry(orderID kernel.UUID, status Status, note string, at time.Time) (HistoryEntry, error) {
	if err := orderID.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if at.IsZero() {
		return HistoryEntry{}, errs.NewValueIsRequiredError("at")
	}

	return HistoryEntry{
		orderID: orderID,
		status:  status,
		note:    note,
		at:      at,
	}, nil
}

// OrderID returns the order the entry belongs to.
func (h HistoryEntry) OrderID() kernel.UUID {
	return h.orderID
}

// Status returns the status the order transitioned into.
func (h HistoryEntry) Status() Status {
	return h.status
}

// Note returns the human-readable context for the transition.
func (h HistoryEntry) Note() string {
	return h.note
}

// At returns when the transition occurred.
func (h HistoryEntry) At() time.Time {
	return h.at
}
