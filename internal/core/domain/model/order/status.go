package order

import (
	"errors"
	"fmt"
)

// Transition errors reported by the Status state machine.
var (
	// ErrAlreadyClaimed is returned when claiming an order that is no longer Pending.
	// A caller racing for the same order sees this error after losing the claim.
	ErrAlreadyClaimed = errors.New("order is already claimed")

	// ErrInvalidTransition is returned when a requested transition is not legal
	// from the order's current status.
	ErrInvalidTransition = errors.New("status transition is not allowed")

	// ErrConcurrentTransition is returned by a conditional write when the
	// stored row moved to another status between the caller's read and its
	// write. The in-memory aggregate is stale and must not be persisted.
	ErrConcurrentTransition = errors.New("order status changed concurrently")
)

// Status represents the lifecycle state of a shipment order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> Pickup ──> Transit ──> Delivered ──> Completed
//	   │  ▲         │
//	   │  └─────────┤ (reopen: stale claim returned to the pool)
//	   └────────────┴──> Cancelled
//
// Completed and Cancelled are terminal. Delivered requires Transit to have
// been reached first; there is no shortcut from Accepted to Delivered.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a shipper posts an order.
	// Pending orders are visible in the available pool and can be claimed.
	Pending

	// Accepted indicates a driver has claimed the order exclusively.
	Accepted

	// Pickup indicates the driver has collected the cargo from the shipper.
	Pickup

	// Transit indicates the cargo is on its way to the dropoff point.
	Transit

	// Delivered indicates the driver reported delivery; awaiting shipper confirmation.
	Delivered

	// Completed indicates the shipper confirmed delivery. Terminal.
	Completed

	// Cancelled indicates the order was withdrawn before any pickup happened. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Pickup:    "Pickup",
		Transit:   "Transit",
		Delivered: "Delivered",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		Pickup:    "Pickup",
		Transit:   "Transit",
		Delivered: "Delivered",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call
// on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCanHaveDriver validates the consistency between order status and driver assignment.
//
// Business rules:
//   - Pending and Cancelled orders must not have a driver assigned
//   - Accepted, Pickup, Transit, Delivered and Completed orders must have a driver
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	requiresDriver := s == Accepted || s == Pickup || s == Transit || s == Delivered || s == Completed

	if hasDriver && !requiresDriver {
		return fmt.Errorf("%w: %s must not have a driver", ErrInvalidTransition, s)
	}
	if !hasDriver && requiresDriver {
		return fmt.Errorf("%w: %s must have a driver", ErrInvalidTransition, s)
	}

	return nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Claim transitions the status to Accepted.
//
// The only valid source state is Pending. Any other state returns
// ErrAlreadyClaimed: the order either belongs to another driver already
// or has left the available pool.
func (s Status) Claim() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: status is %s", ErrAlreadyClaimed, s)
	}

	return Accepted, nil
}

// PickUp transitions the status from Accepted to Pickup.
func (s Status) PickUp() (Status, error) {
	if s != Accepted {
		return 0, fmt.Errorf("%w: cannot pick up from %s", ErrInvalidTransition, s)
	}

	return Pickup, nil
}

// StartTransit transitions the status from Pickup to Transit.
func (s Status) StartTransit() (Status, error) {
	if s != Pickup {
		return 0, fmt.Errorf("%w: cannot start transit from %s", ErrInvalidTransition, s)
	}

	return Transit, nil
}

// Deliver transitions the status from Transit to Delivered.
// Transit must have been reached first; there is no shortcut from Accepted.
func (s Status) Deliver() (Status, error) {
	if s != Transit {
		return 0, fmt.Errorf("%w: cannot deliver from %s", ErrInvalidTransition, s)
	}

	return Delivered, nil
}

// Complete transitions the status from Delivered to Completed.
// Completed is a final state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != Delivered {
		return 0, fmt.Errorf("%w: cannot complete from %s", ErrInvalidTransition, s)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid source states are Pending (no driver found) and Accepted
// (claim withdrawn before pickup). Once cargo has been picked up the
// order can no longer be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Accepted {
		return 0, fmt.Errorf("%w: cannot cancel from %s", ErrInvalidTransition, s)
	}

	return Cancelled, nil
}

// Reopen transitions the status from Accepted back to Pending,
// returning the order to the available pool after a stale claim.
func (s Status) Reopen() (Status, error) {
	if s != Accepted {
		return 0, fmt.Errorf("%w: cannot reopen from %s", ErrInvalidTransition, s)
	}

	return Pending, nil
}
