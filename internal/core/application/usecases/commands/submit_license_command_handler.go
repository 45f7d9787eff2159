package commands

import (
	"context"

	"logipeek/internal/core/domain/model/driver"
)

// SubmitLicenseCommandHandler stores an uploaded license document on the
// driver's profile and queues it for review.
type SubmitLicenseCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewSubmitLicenseCommandHandler creates a handler for license submissions.
func NewSubmitLicenseCommandHandler(uowFactory DriverUoWFactory) SubmitLicenseCommandHandler {
	return SubmitLicenseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the submission and returns the updated profile.
func (h SubmitLicenseCommandHandler) Handle(ctx context.Context, command SubmitLicenseCommand) (*driver.Profile, error) {
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

	if err = profile.SubmitLicense(command.ImageURL()); err != nil {
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
