// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status, shipper and driver assignment.
type OrderDTO struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrderNumber    string      `gorm:"uniqueIndex"`
	ShipperID      uuid.UUID   `gorm:"type:uuid;index"`
	DriverID       *uuid.UUID  `gorm:"type:uuid;index"`
	Pickup         GeoPointDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff        GeoPointDTO `gorm:"embedded;embeddedPrefix:dropoff_"`
	WeightKg       float64
	VehicleType    string
	Description    string
	EstimatedPrice int64
	FinalPrice     *int64
	PaymentMethod  string
	Rating         *int
	Status         int `gorm:"index"`
	CreatedAt      time.Time
	AcceptedAt     *time.Time
	PickupAt       *time.Time
	TransitAt      *time.Time
	DeliveredAt    *time.Time
	CompletedAt    *time.Time
	CancelledAt    *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// GeoPointDTO represents an embedded route endpoint within the order table.
type GeoPointDTO struct {
	Address string
	Lat     float64
	Lng     float64
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional driver assignment, pricing
// outcome and lifecycle timestamps.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		ShipperID:   aggregate.Shipper().Bytes(),
		DriverID:    driverID,
		Pickup: GeoPointDTO{
			Address: aggregate.Pickup().Address(),
			Lat:     aggregate.Pickup().Lat(),
			Lng:     aggregate.Pickup().Lng(),
		},
		Dropoff: GeoPointDTO{
			Address: aggregate.Dropoff().Address(),
			Lat:     aggregate.Dropoff().Lat(),
			Lng:     aggregate.Dropoff().Lng(),
		},
		WeightKg:       aggregate.WeightKg(),
		VehicleType:    string(aggregate.VehicleType()),
		Description:    aggregate.Description(),
		EstimatedPrice: aggregate.EstimatedPrice(),
		FinalPrice:     aggregate.FinalPrice(),
		PaymentMethod:  string(aggregate.PaymentMethod()),
		Rating:         aggregate.Rating(),
		Status:         int(aggregate.Status()),
		CreatedAt:      aggregate.CreatedAt(),
		AcceptedAt:     aggregate.AcceptedAt(),
		PickupAt:       aggregate.PickupAt(),
		TransitAt:      aggregate.TransitAt(),
		DeliveredAt:    aggregate.DeliveredAt(),
		CompletedAt:    aggregate.CompletedAt(),
		CancelledAt:    aggregate.CancelledAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, driver assignment and
// lifecycle timestamps using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipperID, err := kernel.UUIDFromBytes(dto.ShipperID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	pickup, err := kernel.NewGeoPoint(dto.Pickup.Address, dto.Pickup.Lat, dto.Pickup.Lng)
	if err != nil {
		return nil, err
	}

	dropoff, err := kernel.NewGeoPoint(dto.Dropoff.Address, dto.Dropoff.Lat, dto.Dropoff.Lng)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		shipperID,
		driverID,
		pickup,
		dropoff,
		dto.WeightKg,
		order.VehicleType(dto.VehicleType),
		dto.Description,
		dto.EstimatedPrice,
		dto.FinalPrice,
		order.PaymentMethod(dto.PaymentMethod),
		dto.Rating,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.AcceptedAt,
		dto.PickupAt,
		dto.TransitAt,
		dto.DeliveredAt,
		dto.CompletedAt,
		dto.CancelledAt,
	)
}
