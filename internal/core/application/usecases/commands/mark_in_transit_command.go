package commands

import (
	"errors"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/pkg/guard"
)

var ErrMarkInTransitCommandIsNotConstructed = errors.New(
	"MarkInTransitCommand must be created via NewMarkInTransitCommand constructor",
)

// MarkInTransitCommand represents the claiming driver reporting that the
// cargo left the pickup point and is on its way to the dropoff.
type MarkInTransitCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkInTransitCommand creates a command to record the start of transit.
// Both identifiers must be valid UUIDs.
func NewMarkInTransitCommand(orderID, driverID kernel.UUID) (MarkInTransitCommand, error) {
	transitCommand := MarkInTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitCommand.setOrderID(orderID),
		transitCommand.setDriverID(driverID),
	); err != nil {
		return MarkInTransitCommand{}, err
	}

	return transitCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkInTransitCommandIsNotConstructed if validation fails.
func (c MarkInTransitCommand) Validate() error {
	return c.guard.Validate(ErrMarkInTransitCommandIsNotConstructed)
}

// OrderID returns the order being progressed.
func (c MarkInTransitCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the reporting driver.
func (c MarkInTransitCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *MarkInTransitCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkInTransitCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
