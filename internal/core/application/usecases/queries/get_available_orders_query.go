// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/pkg/guard"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery retrieves the pool of Pending orders that drivers
// can claim.
//
// Example:
//
//	query := NewGetAvailableOrdersQuery()
//	handler := NewGetAvailableOrdersQueryHandler(db)
//
//	available, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve available orders: %w", err)
//	}
//
//	for _, o := range available {
//	    fmt.Printf("%s: %s -> %s (%.0f kg)\n",
//	        o.OrderNumber, o.PickupAddress, o.DropoffAddress, o.WeightKg)
//	}
type GetAvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for the claimable order pool.
// This is a parameterless query: eligibility of the asking driver is
// enforced at claim time, not at browse time.
func NewGetAvailableOrdersQuery() GetAvailableOrdersQuery {
	return GetAvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableOrdersQueryIsNotConstructed if validation fails.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// GetAvailableOrdersQueryResponse is one claimable order in the read model.
type GetAvailableOrdersQueryResponse struct {
	ID             kernel.UUID
	OrderNumber    string
	PickupAddress  string
	DropoffAddress string
	WeightKg       float64
	VehicleType    string
	Description    string
	EstimatedPrice int64
	PaymentMethod  string
	CreatedAt      time.Time
}
