package historyrepo

import (
	"context"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
// The ledger is insert-only; there are deliberately no update or delete
// operations on this type.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Append persists one ledger entry.
func (r *GormHistoryRepository) Append(ctx context.Context, entry order.HistoryEntry) error {
	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetForOrder retrieves all ledger entries for an order, oldest first.
func (r *GormHistoryRepository) GetForOrder(ctx context.Context, orderID kernel.UUID) ([]order.HistoryEntry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryEntryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("occurred_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]order.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := toDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
