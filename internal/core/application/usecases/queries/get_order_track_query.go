package queries

import (
	"errors"
	"time"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/pkg/guard"
)

var ErrGetOrderTrackQueryIsNotConstructed = errors.New(
	"GetOrderTrackQuery must be created via NewGetOrderTrackQuery constructor",
)

// GetOrderTrackQuery retrieves the append-only status ledger of one order:
// every transition it went through, oldest first, with the note recorded at
// each step.
type GetOrderTrackQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTrackQuery creates a query for one order's ledger.
func NewGetOrderTrackQuery(orderID kernel.UUID) (GetOrderTrackQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTrackQuery{}, err
	}

	return GetOrderTrackQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderTrackQueryIsNotConstructed if validation fails.
func (q GetOrderTrackQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackQueryIsNotConstructed)
}

// OrderID returns the order whose ledger is requested.
func (q GetOrderTrackQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderTrackQueryResponse is one ledger entry in the read model.
type GetOrderTrackQueryResponse struct {
	Status string
	Note   string
	At     time.Time
}
