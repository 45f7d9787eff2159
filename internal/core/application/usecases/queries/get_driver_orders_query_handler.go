package queries

import (
	"context"
	"database/sql"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverOrdersQueryHandler retrieves one driver's workload or delivery
// history from the database.
type GetDriverOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverOrdersQueryHandler creates a handler for driver order queries.
// Requires a GORM database connection for query execution.
func NewGetDriverOrdersQueryHandler(db *gorm.DB) GetDriverOrdersQueryHandler {
	return GetDriverOrdersQueryHandler{db: db}
}

// Handle executes the query for the requested scope.
// Active orders are sorted oldest claim first; completed orders most recent
// first.
func (h GetDriverOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDriverOrdersQuery,
) ([]GetDriverOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := []order.Status{order.Accepted, order.Pickup, order.Transit, order.Delivered}
	orderBy := "accepted_at"
	if query.Scope() == DriverOrdersCompleted {
		statuses = []order.Status{order.Completed}
		orderBy = "completed_at DESC"
	}

	orders := make([]GetDriverOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			pickup_address,
			dropoff_address,
			weight_kg,
			vehicle_type,
			estimated_price,
			final_price,
			payment_method,
			created_at,
			accepted_at,
			completed_at
		FROM orders
		WHERE driver_id = ? AND status IN ?
		ORDER BY `+orderBy,
		query.DriverID().String(), statuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDriverOrdersQueryResponse
		var id uuid.UUID
		var status int
		var finalPrice sql.NullInt64
		var acceptedAt, completedAt sql.NullTime

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&status,
			&resp.PickupAddress,
			&resp.DropoffAddress,
			&resp.WeightKg,
			&resp.VehicleType,
			&resp.EstimatedPrice,
			&finalPrice,
			&resp.PaymentMethod,
			&resp.CreatedAt,
			&acceptedAt,
			&completedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()
		if finalPrice.Valid {
			price := finalPrice.Int64
			resp.FinalPrice = &price
		}
		if acceptedAt.Valid {
			at := acceptedAt.Time
			resp.AcceptedAt = &at
		}
		if completedAt.Valid {
			at := completedAt.Time
			resp.CompletedAt = &at
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
