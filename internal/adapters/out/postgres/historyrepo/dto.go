// Package historyrepo persists the append-only status ledger kept per order.
package historyrepo

import (
	"time"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// HistoryEntryDTO represents one ledger row in the database.
// Rows are insert-only; the surrogate key keeps same-instant entries ordered.
type HistoryEntryDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Status     int       `gorm:"type:int;not null"`
	Note       string
	OccurredAt time.Time `gorm:"index;not null"`
}

// TableName specifies the database table name for ledger entries.
// Overrides GORM's default naming convention to use "order_history".
func (HistoryEntryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry order.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		OrderID:    entry.OrderID().Bytes(),
		Status:     int(entry.Status()),
		Note:       entry.Note(),
		OccurredAt: entry.At(),
	}
}

// toDomain converts a database row back to a ledger entry.
func toDomain(dto HistoryEntryDTO) (order.HistoryEntry, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}

	return order.NewHistoryEntry(orderID, order.Status(dto.Status), dto.Note, dto.OccurredAt)
}
