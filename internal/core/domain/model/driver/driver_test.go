package driver_test

import (
	"testing"

	"logipeek/internal/core/domain/model/driver"
	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile(t *testing.T) *driver.Profile {
	t.Helper()

	profile, err := driver.NewProfile(kernel.NewUUID())
	require.NoError(t, err)
	require.NotNil(t, profile)
	return profile
}

func restoreProfile(t *testing.T, rating float64, trips int, earnings int64) *driver.Profile {
	t.Helper()

	imageURL := "https://cdn.example.com/licenses/abc.jpg"
	approved := true
	profile, err := driver.RestoreProfile(
		kernel.NewUUID(),
		driver.Online,
		rating,
		trips,
		earnings,
		&imageURL,
		&approved,
	)
	require.NoError(t, err)
	return profile
}

func TestNewProfile(t *testing.T) {
	t.Run("should create offline profile with no history", func(t *testing.T) {
		profile := newProfile(t)

		assert.Equal(t, driver.Offline, profile.Availability())
		assert.Zero(t, profile.Rating())
		assert.Zero(t, profile.TotalTrips())
		assert.Zero(t, profile.TotalEarnings())
		assert.Nil(t, profile.LicenseImageURL())
		assert.Nil(t, profile.LicenseApproved())
		require.NoError(t, profile.Validate())
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := driver.NewProfile(kernel.UUID{})

		require.Error(t, err)
	})
}

func TestRestoreProfile(t *testing.T) {
	t.Run("should restore persisted state", func(t *testing.T) {
		profile := restoreProfile(t, 4.5, 10, 1500000)

		assert.Equal(t, driver.Online, profile.Availability())
		assert.InDelta(t, 4.5, profile.Rating(), 1e-9)
		assert.Equal(t, 10, profile.TotalTrips())
		assert.Equal(t, int64(1500000), profile.TotalEarnings())
		require.NotNil(t, profile.LicenseApproved())
		assert.True(t, *profile.LicenseApproved())
	})

	t.Run("should reject out-of-range rating", func(t *testing.T) {
		_, err := driver.RestoreProfile(kernel.NewUUID(), driver.Online, 5.5, 0, 0, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject negative trip count", func(t *testing.T) {
		_, err := driver.RestoreProfile(kernel.NewUUID(), driver.Online, 4.0, -1, 0, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative earnings", func(t *testing.T) {
		_, err := driver.RestoreProfile(kernel.NewUUID(), driver.Online, 4.0, 1, -100, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid availability", func(t *testing.T) {
		_, err := driver.RestoreProfile(kernel.NewUUID(), driver.AvailabilityUnknown, 4.0, 1, 0, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProfile_Availability(t *testing.T) {
	t.Run("should toggle online and offline", func(t *testing.T) {
		profile := newProfile(t)

		profile.GoOnline()
		assert.Equal(t, driver.Online, profile.Availability())

		profile.GoOffline()
		assert.Equal(t, driver.Offline, profile.Availability())
	})

	t.Run("should become busy at claim and online at release", func(t *testing.T) {
		profile := restoreProfile(t, 4.5, 10, 1500000)

		profile.BeginTrip()
		assert.Equal(t, driver.Busy, profile.Availability())

		profile.ReleaseTrip()
		assert.Equal(t, driver.Online, profile.Availability())
	})

	t.Run("should leave statistics untouched on release", func(t *testing.T) {
		profile := restoreProfile(t, 4.5, 10, 1500000)
		profile.BeginTrip()

		profile.ReleaseTrip()

		assert.Equal(t, 10, profile.TotalTrips())
		assert.Equal(t, int64(1500000), profile.TotalEarnings())
		assert.InDelta(t, 4.5, profile.Rating(), 1e-9)
	})
}

func TestProfile_CompleteTrip(t *testing.T) {
	t.Run("should fold the score into the running average", func(t *testing.T) {
		profile := restoreProfile(t, 4.5, 10, 1500000)
		profile.BeginTrip()
		score := 5

		err := profile.CompleteTrip(250000, &score)

		require.NoError(t, err)
		assert.Equal(t, 11, profile.TotalTrips())
		assert.Equal(t, int64(1750000), profile.TotalEarnings())
		assert.InDelta(t, (4.5*10+5)/11, profile.Rating(), 1e-9)
		assert.Equal(t, driver.Online, profile.Availability())
	})

	t.Run("should weight a long history correctly", func(t *testing.T) {
		profile := restoreProfile(t, 4.9, 255, 0)
		score := 5

		err := profile.CompleteTrip(100000, &score)

		require.NoError(t, err)
		assert.Equal(t, 256, profile.TotalTrips())
		assert.InDelta(t, 4.9004, profile.Rating(), 0.0001)
	})

	t.Run("should count the first rated trip at full weight", func(t *testing.T) {
		profile := newProfile(t)
		score := 4

		err := profile.CompleteTrip(50000, &score)

		require.NoError(t, err)
		assert.Equal(t, 1, profile.TotalTrips())
		assert.InDelta(t, 4.0, profile.Rating(), 1e-9)
	})

	t.Run("should keep the average when no score is given", func(t *testing.T) {
		profile := restoreProfile(t, 4.5, 10, 1500000)

		err := profile.CompleteTrip(250000, nil)

		require.NoError(t, err)
		assert.Equal(t, 11, profile.TotalTrips())
		assert.InDelta(t, 4.5, profile.Rating(), 1e-9)
	})

	t.Run("should reject non-positive fare", func(t *testing.T) {
		profile := restoreProfile(t, 4.5, 10, 1500000)

		err := profile.CompleteTrip(0, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 10, profile.TotalTrips())
	})

	t.Run("should reject out-of-range score", func(t *testing.T) {
		profile := restoreProfile(t, 4.5, 10, 1500000)
		score := 6

		err := profile.CompleteTrip(250000, &score)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 10, profile.TotalTrips())
		assert.Equal(t, int64(1500000), profile.TotalEarnings())
	})
}

func TestProfile_License(t *testing.T) {
	t.Run("should store submission and await review", func(t *testing.T) {
		profile := newProfile(t)

		err := profile.SubmitLicense("https://cdn.example.com/licenses/abc.jpg")

		require.NoError(t, err)
		require.NotNil(t, profile.LicenseImageURL())
		assert.Equal(t, "https://cdn.example.com/licenses/abc.jpg", *profile.LicenseImageURL())
		assert.Nil(t, profile.LicenseApproved())
	})

	t.Run("should reject empty image url", func(t *testing.T) {
		profile := newProfile(t)

		err := profile.SubmitLicense("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should record review outcome", func(t *testing.T) {
		profile := newProfile(t)
		require.NoError(t, profile.SubmitLicense("https://cdn.example.com/licenses/abc.jpg"))

		err := profile.ReviewLicense(true)

		require.NoError(t, err)
		require.NotNil(t, profile.LicenseApproved())
		assert.True(t, *profile.LicenseApproved())
	})

	t.Run("should reject review with nothing on file", func(t *testing.T) {
		profile := newProfile(t)

		err := profile.ReviewLicense(true)

		require.ErrorIs(t, err, driver.ErrNoLicenseImage)
	})

	t.Run("should reset review outcome on resubmission", func(t *testing.T) {
		profile := newProfile(t)
		require.NoError(t, profile.SubmitLicense("https://cdn.example.com/licenses/v1.jpg"))
		require.NoError(t, profile.ReviewLicense(false))

		err := profile.SubmitLicense("https://cdn.example.com/licenses/v2.jpg")

		require.NoError(t, err)
		assert.Nil(t, profile.LicenseApproved())
	})
}

func TestProfile_Validate(t *testing.T) {
	t.Run("should reject profile not built by a constructor", func(t *testing.T) {
		var profile driver.Profile

		require.ErrorIs(t, profile.Validate(), driver.ErrProfileIsNotConstructed)
	})

	t.Run("should reject nil profile", func(t *testing.T) {
		var profile *driver.Profile

		require.ErrorIs(t, profile.Validate(), driver.ErrProfileIsNotConstructed)
	})
}
