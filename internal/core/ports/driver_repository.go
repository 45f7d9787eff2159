// Package ports defines repository interfaces for the shipment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"logipeek/internal/core/domain/model/driver"
	"logipeek/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver profiles.
type DriverRepository interface {
	// Add persists a new driver profile to storage.
	// The profile must be valid and not already exist in the repository.
	Add(ctx context.Context, profile *driver.Profile) error

	// Update persists changes to an existing driver profile.
	// The profile must exist in the repository and be valid.
	Update(ctx context.Context, profile *driver.Profile) error

	// Get retrieves a driver profile by its unique identifier.
	// Returns the complete profile including license standing and trip stats.
	Get(ctx context.Context, id kernel.UUID) (*driver.Profile, error)
}
