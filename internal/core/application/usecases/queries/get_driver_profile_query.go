package queries

import (
	"errors"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/pkg/guard"
)

var ErrGetDriverProfileQueryIsNotConstructed = errors.New(
	"GetDriverProfileQuery must be created via NewGetDriverProfileQuery constructor",
)

// GetDriverProfileQuery retrieves one driver's public profile: availability,
// trip statistics and license standing.
type GetDriverProfileQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverProfileQuery creates a query for one driver's profile.
func NewGetDriverProfileQuery(driverID kernel.UUID) (GetDriverProfileQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverProfileQuery{}, err
	}

	return GetDriverProfileQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDriverProfileQueryIsNotConstructed if validation fails.
func (q GetDriverProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverProfileQueryIsNotConstructed)
}

// DriverID returns the driver whose profile is requested.
func (q GetDriverProfileQuery) DriverID() kernel.UUID {
	return q.driverID
}

// GetDriverProfileQueryResponse is the driver profile read model.
// LicenseStatus is one of "none", "pending", "approved" or "rejected".
type GetDriverProfileQueryResponse struct {
	ID            kernel.UUID
	Availability  string
	Rating        float64
	TotalTrips    int
	TotalEarnings int64
	LicenseStatus string
}
