package queries

import (
	"context"

	"logipeek/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderTrackQueryHandler reads one order's status ledger from the
// database.
type GetOrderTrackQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTrackQueryHandler creates a handler for order ledger queries.
// Requires a GORM database connection for query execution.
func NewGetOrderTrackQueryHandler(db *gorm.DB) GetOrderTrackQueryHandler {
	return GetOrderTrackQueryHandler{db: db}
}

// Handle executes the query, transitions in chronological order.
func (h GetOrderTrackQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackQuery,
) ([]GetOrderTrackQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	track := make([]GetOrderTrackQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			note,
			occurred_at
		FROM order_history
		WHERE order_id = ?
		ORDER BY occurred_at, id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrderTrackQueryResponse
		var status int

		if err = rows.Scan(&status, &resp.Note, &resp.At); err != nil {
			return nil, err
		}

		resp.Status = order.Status(status).String()
		track = append(track, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return track, nil
}
