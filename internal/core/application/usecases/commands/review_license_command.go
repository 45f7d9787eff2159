package commands

import (
	"errors"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/pkg/guard"
)

var ErrReviewLicenseCommandIsNotConstructed = errors.New(
	"ReviewLicenseCommand must be created via NewReviewLicenseCommand constructor",
)

// ReviewLicenseCommand represents an operator recording the outcome of a
// license review.
type ReviewLicenseCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	approved bool

	guard guard.ConstructorGuard
}

// NewReviewLicenseCommand creates a command to record a review outcome.
func NewReviewLicenseCommand(driverID kernel.UUID, approved bool) (ReviewLicenseCommand, error) {
	reviewCommand := ReviewLicenseCommand{
		approved: approved,
		guard:    guard.NewConstructorGuard(),
	}

	if err := reviewCommand.setDriverID(driverID); err != nil {
		return ReviewLicenseCommand{}, err
	}

	return reviewCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReviewLicenseCommandIsNotConstructed if validation fails.
func (c ReviewLicenseCommand) Validate() error {
	return c.guard.Validate(ErrReviewLicenseCommandIsNotConstructed)
}

// DriverID returns the driver whose license was reviewed.
func (c ReviewLicenseCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Approved returns the review outcome.
func (c ReviewLicenseCommand) Approved() bool {
	return c.approved
}

func (c *ReviewLicenseCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
