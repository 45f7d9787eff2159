// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver profile aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"logipeek/internal/core/domain/model/driver"
	"logipeek/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver profiles.
// Maps the profile domain aggregate to a relational table holding availability,
// trip statistics and license standing.
type DriverDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Availability    int       `gorm:"type:int;not null"`
	Rating          float64   `gorm:"not null"`
	TotalTrips      int       `gorm:"type:int;not null"`
	TotalEarnings   int64     `gorm:"not null"`
	LicenseImageURL *string
	LicenseApproved *bool
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver profile aggregate to its database representation.
func fromDomain(profile *driver.Profile) DriverDTO {
	return DriverDTO{
		ID:              profile.ID().Bytes(),
		Availability:    int(profile.Availability()),
		Rating:          profile.Rating(),
		TotalTrips:      profile.TotalTrips(),
		TotalEarnings:   profile.TotalEarnings(),
		LicenseImageURL: profile.LicenseImageURL(),
		LicenseApproved: profile.LicenseApproved(),
	}
}

// toDomain converts a database DTO to a driver profile aggregate.
// Reconstructs the complete profile including license standing using RestoreProfile.
func toDomain(dto DriverDTO) (*driver.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreProfile(
		id,
		driver.Availability(dto.Availability),
		dto.Rating,
		dto.TotalTrips,
		dto.TotalEarnings,
		dto.LicenseImageURL,
		dto.LicenseApproved,
	)
}
