package commands

import (
	"errors"
	"strings"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/pkg/errs"
	"logipeek/internal/pkg/guard"
)

var ErrSubmitLicenseCommandIsNotConstructed = errors.New(
	"SubmitLicenseCommand must be created via NewSubmitLicenseCommand constructor",
)

// SubmitLicenseCommand represents a driver uploading their license document.
// Every submission resets the review outcome, so a rejected driver can try
// again with a new image.
type SubmitLicenseCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	imageURL string

	guard guard.ConstructorGuard
}

// NewSubmitLicenseCommand creates a command to submit a license image.
// The image URL must be non-empty.
func NewSubmitLicenseCommand(driverID kernel.UUID, imageURL string) (SubmitLicenseCommand, error) {
	submitCommand := SubmitLicenseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		submitCommand.setDriverID(driverID),
		submitCommand.setImageURL(imageURL),
	); err != nil {
		return SubmitLicenseCommand{}, err
	}

	return submitCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitLicenseCommandIsNotConstructed if validation fails.
func (c SubmitLicenseCommand) Validate() error {
	return c.guard.Validate(ErrSubmitLicenseCommandIsNotConstructed)
}

// DriverID returns the submitting driver.
func (c SubmitLicenseCommand) DriverID() kernel.UUID {
	return c.driverID
}

// ImageURL returns the uploaded license document URL.
func (c SubmitLicenseCommand) ImageURL() string {
	return c.imageURL
}

func (c *SubmitLicenseCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *SubmitLicenseCommand) setImageURL(imageURL string) error {
	if strings.TrimSpace(imageURL) == "" {
		return errs.NewValueIsRequiredError("imageURL")
	}

	c.imageURL = imageURL
	return nil
}
