package commands

import (
	"errors"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents the claiming driver reporting that the
// cargo reached the dropoff point. The order then awaits the shipper's
// confirmation to complete.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to record delivery.
// Both identifiers must be valid UUIDs.
func NewMarkDeliveredCommand(orderID, driverID kernel.UUID) (MarkDeliveredCommand, error) {
	deliveredCommand := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveredCommand.setOrderID(orderID),
		deliveredCommand.setDriverID(driverID),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return deliveredCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkDeliveredCommandIsNotConstructed if validation fails.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the order being progressed.
func (c MarkDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the reporting driver.
func (c MarkDeliveredCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *MarkDeliveredCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkDeliveredCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
