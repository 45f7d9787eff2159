package queries

import (
	"context"
	"database/sql"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipperOrdersQueryHandler retrieves one shipper's posted orders from
// the database.
type GetShipperOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetShipperOrdersQueryHandler creates a handler for shipper order queries.
// Requires a GORM database connection for query execution.
func NewGetShipperOrdersQueryHandler(db *gorm.DB) GetShipperOrdersQueryHandler {
	return GetShipperOrdersQueryHandler{db: db}
}

// Handle executes the query, newest orders first.
func (h GetShipperOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetShipperOrdersQuery,
) ([]GetShipperOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetShipperOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			driver_id,
			pickup_address,
			dropoff_address,
			weight_kg,
			vehicle_type,
			estimated_price,
			final_price,
			payment_method,
			rating,
			created_at
		FROM orders
		WHERE shipper_id = ?
		ORDER BY created_at DESC
	`, query.ShipperID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetShipperOrdersQueryResponse
		var id uuid.UUID
		var status int
		var driverID uuid.NullUUID
		var finalPrice sql.NullInt64
		var rating sql.NullInt64

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&status,
			&driverID,
			&resp.PickupAddress,
			&resp.DropoffAddress,
			&resp.WeightKg,
			&resp.VehicleType,
			&resp.EstimatedPrice,
			&finalPrice,
			&resp.PaymentMethod,
			&rating,
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
		resp.Status = order.Status(status).String()
		if driverID.Valid {
			assigned, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DriverID = &assigned
		}
		if finalPrice.Valid {
			price := finalPrice.Int64
			resp.FinalPrice = &price
		}
		if rating.Valid {
			score := int(rating.Int64)
			resp.Rating = &score
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
