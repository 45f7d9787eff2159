package commands

import (
	"errors"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/core/domain/model/order"
	"logipeek/internal/pkg/errs"
	"logipeek/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents the shipper verifying a delivered order,
// optionally scoring the driver.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	shipperID kernel.UUID
	rating    *int

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command for the shipper to confirm
// delivery. rating is optional; when given it must be within
// [order.RatingMin, order.RatingMax].
func NewConfirmDeliveryCommand(
	orderID kernel.UUID,
	shipperID kernel.UUID,
	rating *int,
) (ConfirmDeliveryCommand, error) {
	confirmCommand := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		confirmCommand.setOrderID(orderID),
		confirmCommand.setShipperID(shipperID),
		confirmCommand.setRating(rating),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmDeliveryCommandIsNotConstructed if validation fails.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c ConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShipperID returns the confirming shipper.
func (c ConfirmDeliveryCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// Rating returns the optional driver score.
func (c ConfirmDeliveryCommand) Rating() *int {
	return c.rating
}

func (c *ConfirmDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmDeliveryCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}

func (c *ConfirmDeliveryCommand) setRating(rating *int) error {
	if rating != nil && (*rating < order.RatingMin || *rating > order.RatingMax) {
		return errs.NewValueIsOutOfRangeError("rating", *rating, order.RatingMin, order.RatingMax)
	}

	if rating != nil {
		r := *rating
		c.rating = &r
	}
	return nil
}
