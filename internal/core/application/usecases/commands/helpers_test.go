package commands_test

import (
	"testing"
	"time"

	"logipeek/internal/core/domain/model/driver"
	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var testCreatedAt = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func testRoute(t *testing.T) (kernel.GeoPoint, kernel.GeoPoint) {
	t.Helper()
	pickup, err := kernel.NewGeoPoint("12 Dock Rd", 10.762622, 106.660172)
	require.NoError(t, err)
	dropoff, err := kernel.NewGeoPoint("88 Market St", 10.823099, 106.629662)
	require.NoError(t, err)
	return pickup, dropoff
}

// newTestOrder restores an order in the given status, with the driver
// assigned for statuses that require one.
func newTestOrder(t *testing.T, shipperID kernel.UUID, driverID *kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	pickup, dropoff := testRoute(t)
	var acceptedAt, pickupAt, transitAt, deliveredAt *time.Time
	at := testCreatedAt.Add(30 * time.Minute)
	switch status {
	case order.Delivered:
		deliveredAt = &at
		fallthrough
	case order.Transit:
		transitAt = &at
		fallthrough
	case order.Pickup:
		pickupAt = &at
		fallthrough
	case order.Accepted:
		acceptedAt = &at
	}

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), "LP-20260310-DEADBEEF", shipperID, driverID,
		pickup, dropoff, 120, order.VehicleVan, "pallet of tiles",
		250000, nil, order.PaymentCash, nil, status, testCreatedAt,
		acceptedAt, pickupAt, transitAt, deliveredAt, nil, nil,
	)
	require.NoError(t, err)
	return aggregate
}

// newEligibleDriver restores an Online profile with an approved license.
func newEligibleDriver(t *testing.T, id kernel.UUID) *driver.Profile {
	t.Helper()

	imageURL := "https://cdn.example.com/licenses/abc.jpg"
	approved := true
	profile, err := driver.RestoreProfile(id, driver.Online, 4.5, 10, 1500000, &imageURL, &approved)
	require.NoError(t, err)
	return profile
}
