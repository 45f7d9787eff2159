package driver

import (
	"errors"
	"fmt"
	"strings"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/pkg/errs"
)

// Domain errors for driver profile operations.
var (
	// ErrProfileIsNotConstructed is returned when using an improperly initialized Profile.
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")

	// ErrNoLicenseImage is returned when a driver without a license image on file
	// attempts an operation that requires an approved license.
	ErrNoLicenseImage = errors.New("driver has no license image on file")

	// ErrLicensePendingReview is returned while a submitted license awaits review.
	ErrLicensePendingReview = errors.New("driver license is awaiting review")

	// ErrLicenseRejected is returned when the submitted license was rejected.
	ErrLicenseRejected = errors.New("driver license was rejected")
)

// Bounds for the driver's running average rating.
const (
	RatingMin = 0.0
	RatingMax = 5.0
)

// Profile represents a driver's operational record in the system.
// It is an aggregate root that manages availability, license standing, and
// the aggregate trip statistics updated by the order lifecycle.
//
// Business rules:
//   - The lifecycle engine sets availability to Busy at claim and back to
//     Online at completion or displacement
//   - Trip statistics only move forward: trips and earnings never decrease
//   - The running average rating incorporates a new score by weighting the
//     previous average with the previous trip count
//   - License standing is tri-state: no image, pending review, reviewed
//     (approved or rejected)
type Profile struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// availability is the driver's current working state
	availability Availability
	// rating is the running average of shipper scores, 0 until first rated
	rating float64
	// totalTrips counts completed deliveries
	totalTrips int
	// totalEarnings accumulates settled prices, in minor currency units
	totalEarnings int64
	// licenseImageURL points at the uploaded license document (nil if none)
	licenseImageURL *string
	// licenseApproved is nil while pending review, then the review outcome
	licenseApproved *bool
	// isConstructed ensures the profile was created via a factory method
	isConstructed bool
}

// NewProfile creates a fresh driver profile with no license on file,
// no trips, and Offline availability.
func NewProfile(id kernel.UUID) (*Profile, error) {
	profile := &Profile{
		availability:  Offline,
		isConstructed: true,
	}

	if err := profile.setID(id); err != nil {
		return nil, err
	}

	return profile, nil
}

// RestoreProfile reconstructs a driver profile from persistent storage.
// All persisted state is validated before the aggregate is returned.
func RestoreProfile(
	id kernel.UUID,
	availability Availability,
	rating float64,
	totalTrips int,
	totalEarnings int64,
	licenseImageURL *string,
	licenseApproved *bool,
) (*Profile, error) {
	profile := &Profile{
		availability:  availability,
		isConstructed: true,
	}

	if err := errors.Join(
		profile.setID(id),
		availability.Validate(),
		profile.setRating(rating),
		profile.setTotalTrips(totalTrips),
		profile.setTotalEarnings(totalEarnings),
	); err != nil {
		return nil, err
	}

	if licenseImageURL != nil {
		url := *licenseImageURL
		profile.licenseImageURL = &url
	}
	if licenseApproved != nil {
		approved := *licenseApproved
		profile.licenseApproved = &approved
	}

	return profile, nil
}

// Validate ensures the Profile instance was properly constructed through a factory method.
func (p *Profile) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProfileIsNotConstructed
	}

	return nil
}

// ID returns the driver's unique identifier.
func (p *Profile) ID() kernel.UUID {
	return p.id
}

// Availability returns the driver's current working state.
func (p *Profile) Availability() Availability {
	return p.availability
}

// Rating returns the running average of shipper scores.
func (p *Profile) Rating() float64 {
	return p.rating
}

// TotalTrips returns the number of completed deliveries.
func (p *Profile) TotalTrips() int {
	return p.totalTrips
}

// TotalEarnings returns accumulated settled prices in minor currency units.
func (p *Profile) TotalEarnings() int64 {
	return p.totalEarnings
}

// LicenseImageURL returns the uploaded license document URL, or nil if none.
func (p *Profile) LicenseImageURL() *string {
	return p.licenseImageURL
}

// LicenseApproved returns the review outcome: nil while pending, otherwise
// the approval decision. Meaningless when no image is on file.
func (p *Profile) LicenseApproved() *bool {
	return p.licenseApproved
}

// GoOnline marks the driver as working and free to claim orders.
func (p *Profile) GoOnline() {
	p.availability = Online
}

// GoOffline marks the driver as not working.
func (p *Profile) GoOffline() {
	p.availability = Offline
}

// BeginTrip marks the driver Busy when a claim succeeds.
func (p *Profile) BeginTrip() {
	p.availability = Busy
}

// ReleaseTrip returns a displaced driver to Online after their stale claim
// was reopened. Trip statistics are untouched: the delivery never happened.
func (p *Profile) ReleaseTrip() {
	p.availability = Online
}

// CompleteTrip records a finished delivery: increments the trip count,
// adds the settled fare to earnings, folds an optional shipper score into
// the running average rating, and returns the driver to Online.
//
// The trip count is incremented before the average is recomputed, so a new
// score is weighted as 1/newTotalTrips:
//
//	newRating = (oldRating*(newTotalTrips-1) + score) / newTotalTrips
func (p *Profile) CompleteTrip(fare int64, score *int) error {
	if fare <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("fare",
			fmt.Errorf("%d is not greater than 0", fare))
	}
	if score != nil && (float64(*score) < RatingMin || float64(*score) > RatingMax) {
		return errs.NewValueIsOutOfRangeError("score", *score, RatingMin, RatingMax)
	}

	p.totalTrips++
	p.totalEarnings += fare
	if score != nil {
		p.rating = (p.rating*float64(p.totalTrips-1) + float64(*score)) / float64(p.totalTrips)
	}
	p.availability = Online
	return nil
}

// SubmitLicense stores the uploaded license document URL and resets the
// review outcome: every submission awaits a fresh review.
func (p *Profile) SubmitLicense(imageURL string) error {
	if strings.TrimSpace(imageURL) == "" {
		return errs.NewValueIsRequiredError("imageURL")
	}

	url := imageURL
	p.licenseImageURL = &url
	p.licenseApproved = nil
	return nil
}

// ReviewLicense records the review outcome for the submitted license.
// Returns ErrNoLicenseImage when there is nothing on file to review.
func (p *Profile) ReviewLicense(approved bool) error {
	if p.licenseImageURL == nil {
		return ErrNoLicenseImage
	}

	p.licenseApproved = &approved
	return nil
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setRating(rating float64) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	p.rating = rating
	return nil
}

func (p *Profile) setTotalTrips(totalTrips int) error {
	if totalTrips < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalTrips",
			fmt.Errorf("%d is negative", totalTrips))
	}
	p.totalTrips = totalTrips
	return nil
}

func (p *Profile) setTotalEarnings(totalEarnings int64) error {
	if totalEarnings < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalEarnings",
			fmt.Errorf("%d is negative", totalEarnings))
	}
	p.totalEarnings = totalEarnings
	return nil
}
