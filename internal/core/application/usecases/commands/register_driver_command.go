package commands

import (
	"errors"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand represents a request to open a driver profile.
// A fresh profile starts Offline with no license on file, so the driver
// cannot claim orders until a license is submitted and approved.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a driver.
func NewRegisterDriverCommand(driverID kernel.UUID) (RegisterDriverCommand, error) {
	registerCommand := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := registerCommand.setDriverID(driverID); err != nil {
		return RegisterDriverCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterDriverCommandIsNotConstructed if validation fails.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the identifier for the new profile.
func (c RegisterDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *RegisterDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
