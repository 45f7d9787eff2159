package commands

import (
	"context"

	"logipeek/internal/core/domain/model/driver"
)

// ReviewLicenseCommandHandler records the outcome of a license review on the
// driver's profile. An approved license makes the driver eligible to claim
// orders.
type ReviewLicenseCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewReviewLicenseCommandHandler creates a handler for license reviews.
func NewReviewLicenseCommandHandler(uowFactory DriverUoWFactory) ReviewLicenseCommandHandler {
	return ReviewLicenseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review outcome and returns the updated profile.
// Returns driver.ErrNoLicenseImage when there is nothing on file to review.
func (h ReviewLicenseCommandHandler) Handle(ctx context.Context, command ReviewLicenseCommand) (*driver.Profile, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	profile, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return nil, err
	}

	if err = profile.ReviewLicense(command.Approved()); err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return profile, nil
}
