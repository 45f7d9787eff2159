package queries

import (
	"context"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler retrieves the claimable order pool from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for the claimable pool
// query. Requires a GORM database connection for query execution.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all Pending orders.
// Oldest orders come first so they get claimed before they expire.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]GetAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAvailableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			pickup_address,
			dropoff_address,
			weight_kg,
			vehicle_type,
			description,
			estimated_price,
			payment_method,
			created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at
	`, order.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailableOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&resp.PickupAddress,
			&resp.DropoffAddress,
			&resp.WeightKg,
			&resp.VehicleType,
			&resp.Description,
			&resp.EstimatedPrice,
			&resp.PaymentMethod,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
