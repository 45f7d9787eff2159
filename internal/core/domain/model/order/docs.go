// Package order provides domain entities and business logic for shipment
// management in the LogiPeek platform. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages shipment identity, cargo, pricing, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - HistoryEntry: An append-only ledger row recorded for every transition
//
// Key business rules:
//   - Orders must have a valid unique identifier, a route, positive weight and price
//   - Order status follows a defined workflow:
//     Pending -> Accepted -> Pickup -> Transit -> Delivered -> Completed
//   - Cancelled is reachable from Pending and Accepted only
//   - A stale Accepted order can be reopened back to Pending
//   - A driver is assigned if and only if the order has been claimed and not reopened
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
