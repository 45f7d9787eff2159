package services

import (
	"logipeek/internal/core/domain/model/driver"
)

// LicenseGate is a domain service that decides whether a driver may claim
// orders. A driver is eligible when a license image is on file and the
// review outcome is approval.
//
// The gate distinguishes three ineligibility reasons so callers can tell
// the driver what to do next:
//   - driver.ErrNoLicenseImage: nothing uploaded yet
//   - driver.ErrLicensePendingReview: uploaded, review outstanding
//   - driver.ErrLicenseRejected: reviewed and declined
//
// Example usage:
//
//	gate := services.NewLicenseGate()
//	if err := gate.Check(profile); err != nil {
//	    // err names the precise reason; the order is untouched
//	    return err
//	}
//	// driver may claim
type LicenseGate struct{}

// NewLicenseGate creates a new LicenseGate instance.
func NewLicenseGate() LicenseGate {
	return LicenseGate{}
}

// Check validates the profile and evaluates the eligibility predicate.
// It never mutates the profile; claiming is the caller's business.
func (g LicenseGate) Check(profile *driver.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	if profile.LicenseImageURL() == nil {
		return driver.ErrNoLicenseImage
	}

	approved := profile.LicenseApproved()
	if approved == nil {
		return driver.ErrLicensePendingReview
	}
	if !*approved {
		return driver.ErrLicenseRejected
	}

	return nil
}
