package commands

import (
	"errors"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/core/domain/model/order"
	"logipeek/internal/pkg/errs"
	"logipeek/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a shipper's request to post a new shipment.
// Encapsulates the route, cargo attributes and commercial terms of the order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, shipperID, pickup, dropoff,
//	    120.5, order.VehicleVan, "fragile glassware", 250000, order.PaymentCash)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s posted and awaiting a driver", created.OrderNumber())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	shipperID      kernel.UUID
	pickup         kernel.GeoPoint
	dropoff        kernel.GeoPoint
	weightKg       float64
	vehicleType    order.VehicleType
	description    string
	estimatedPrice int64
	paymentMethod  order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to post a new shipment order.
// Validates identifiers, route endpoints, cargo weight, vehicle type,
// estimated price and payment method. Returns a joined error listing every
// invalid field.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	shipperID kernel.UUID,
	pickup kernel.GeoPoint,
	dropoff kernel.GeoPoint,
	weightKg float64,
	vehicleType order.VehicleType,
	description string,
	estimatedPrice int64,
	paymentMethod order.PaymentMethod,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setShipperID(shipperID),
		orderCommand.setRoute(pickup, dropoff),
		orderCommand.setWeightKg(weightKg),
		orderCommand.setVehicleType(vehicleType),
		orderCommand.setEstimatedPrice(estimatedPrice),
		orderCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShipperID returns the posting shipper's identifier.
func (c CreateOrderCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// Pickup returns the pickup location.
func (c CreateOrderCommand) Pickup() kernel.GeoPoint {
	return c.pickup
}

// Dropoff returns the dropoff location.
func (c CreateOrderCommand) Dropoff() kernel.GeoPoint {
	return c.dropoff
}

// WeightKg returns the cargo weight in kilograms.
func (c CreateOrderCommand) WeightKg() float64 {
	return c.weightKg
}

// VehicleType returns the required vehicle class.
func (c CreateOrderCommand) VehicleType() order.VehicleType {
	return c.vehicleType
}

// Description returns the free-form cargo detail.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// EstimatedPrice returns the quoted price in minor currency units.
func (c CreateOrderCommand) EstimatedPrice() int64 {
	return c.estimatedPrice
}

// PaymentMethod returns the settlement method.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}

func (c *CreateOrderCommand) setRoute(pickup, dropoff kernel.GeoPoint) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	if err := dropoff.Validate(); err != nil {
		return err
	}

	c.pickup = pickup
	c.dropoff = dropoff
	return nil
}

func (c *CreateOrderCommand) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidError("weightKg")
	}

	c.weightKg = weightKg
	return nil
}

func (c *CreateOrderCommand) setVehicleType(vehicleType order.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *CreateOrderCommand) setEstimatedPrice(estimatedPrice int64) error {
	if estimatedPrice <= 0 {
		return errs.NewValueIsInvalidError("estimatedPrice")
	}

	c.estimatedPrice = estimatedPrice
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}
