package commands

import (
	"errors"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/pkg/guard"
)

var ErrMarkPickedUpCommandIsNotConstructed = errors.New(
	"MarkPickedUpCommand must be created via NewMarkPickedUpCommand constructor",
)

// MarkPickedUpCommand represents the claiming driver reporting that the
// cargo was collected from the pickup point.
type MarkPickedUpCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPickedUpCommand creates a command to record cargo collection.
// Both identifiers must be valid UUIDs.
func NewMarkPickedUpCommand(orderID, driverID kernel.UUID) (MarkPickedUpCommand, error) {
	pickupCommand := MarkPickedUpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pickupCommand.setOrderID(orderID),
		pickupCommand.setDriverID(driverID),
	); err != nil {
		return MarkPickedUpCommand{}, err
	}

	return pickupCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkPickedUpCommandIsNotConstructed if validation fails.
func (c MarkPickedUpCommand) Validate() error {
	return c.guard.Validate(ErrMarkPickedUpCommandIsNotConstructed)
}

// OrderID returns the order being progressed.
func (c MarkPickedUpCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the reporting driver.
func (c MarkPickedUpCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *MarkPickedUpCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkPickedUpCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
