package queries

import (
	"errors"
	"time"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/pkg/guard"
)

var ErrGetShipperOrdersQueryIsNotConstructed = errors.New(
	"GetShipperOrdersQuery must be created via NewGetShipperOrdersQuery constructor",
)

// GetShipperOrdersQuery retrieves every order a shipper has posted, newest
// first, regardless of status.
type GetShipperOrdersQuery struct { //nolint:recvcheck //using for validation
	shipperID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipperOrdersQuery creates a query for one shipper's orders.
func NewGetShipperOrdersQuery(shipperID kernel.UUID) (GetShipperOrdersQuery, error) {
	if err := shipperID.Validate(); err != nil {
		return GetShipperOrdersQuery{}, err
	}

	return GetShipperOrdersQuery{
		shipperID: shipperID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipperOrdersQueryIsNotConstructed if validation fails.
func (q GetShipperOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetShipperOrdersQueryIsNotConstructed)
}

// ShipperID returns the shipper whose orders are requested.
func (q GetShipperOrdersQuery) ShipperID() kernel.UUID {
	return q.shipperID
}

// GetShipperOrdersQueryResponse is one of the shipper's orders in the read model.
type GetShipperOrdersQueryResponse struct {
	ID             kernel.UUID
	OrderNumber    string
	Status         string
	DriverID       *kernel.UUID
	PickupAddress  string
	DropoffAddress string
	WeightKg       float64
	VehicleType    string
	EstimatedPrice int64
	FinalPrice     *int64
	PaymentMethod  string
	Rating         *int
	CreatedAt      time.Time
}
