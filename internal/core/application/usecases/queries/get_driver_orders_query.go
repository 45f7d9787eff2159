package queries

import (
	"errors"
	"time"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/pkg/guard"
)

var ErrGetDriverOrdersQueryIsNotConstructed = errors.New(
	"GetDriverOrdersQuery must be created via NewGetDriverOrdersQuery constructor",
)

// DriverOrdersScope selects which slice of a driver's orders to read.
type DriverOrdersScope string

const (
	// DriverOrdersActive selects orders the driver is currently working:
	// Accepted, Pickup, Transit or Delivered.
	DriverOrdersActive DriverOrdersScope = "active"

	// DriverOrdersCompleted selects the driver's finished deliveries.
	DriverOrdersCompleted DriverOrdersScope = "completed"
)

// GetDriverOrdersQuery retrieves the orders assigned to one driver, either
// the current workload or the completed history.
//
// Example:
//
//	query, _ := NewGetDriverOrdersQuery(driverID, DriverOrdersActive)
//	handler := NewGetDriverOrdersQueryHandler(db)
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve driver orders: %w", err)
//	}
type GetDriverOrdersQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	scope    DriverOrdersScope

	guard guard.ConstructorGuard
}

// NewGetDriverOrdersQuery creates a query for one driver's orders.
func NewGetDriverOrdersQuery(driverID kernel.UUID, scope DriverOrdersScope) (GetDriverOrdersQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverOrdersQuery{}, err
	}
	if scope != DriverOrdersActive && scope != DriverOrdersCompleted {
		return GetDriverOrdersQuery{}, errors.New("scope must be active or completed")
	}

	return GetDriverOrdersQuery{
		driverID: driverID,
		scope:    scope,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDriverOrdersQueryIsNotConstructed if validation fails.
func (q GetDriverOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverOrdersQueryIsNotConstructed)
}

// DriverID returns the driver whose orders are requested.
func (q GetDriverOrdersQuery) DriverID() kernel.UUID {
	return q.driverID
}

// Scope returns which slice of the driver's orders is requested.
func (q GetDriverOrdersQuery) Scope() DriverOrdersScope {
	return q.scope
}

// GetDriverOrdersQueryResponse is one of the driver's orders in the read model.
type GetDriverOrdersQueryResponse struct {
	ID             kernel.UUID
	OrderNumber    string
	Status         string
	PickupAddress  string
	DropoffAddress string
	WeightKg       float64
	VehicleType    string
	EstimatedPrice int64
	FinalPrice     *int64
	PaymentMethod  string
	CreatedAt      time.Time
	AcceptedAt     *time.Time
	CompletedAt    *time.Time
}
