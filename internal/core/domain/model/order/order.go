package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNotOwner is returned when a transition is requested by a party that
	// does not own the order for that action (wrong driver or wrong shipper).
	ErrNotOwner = errors.New("caller does not own this order")
)

// Minimum and maximum value a shipper may rate a completed delivery.
const (
	RatingMin = 1
	RatingMax = 5
)

// Order represents a shipment in the system. It is the aggregate root that manages
// the order lifecycle from posting through claim, delivery and confirmation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Cargo attributes (route, weight, vehicle type) are immutable after creation
//   - Status transitions follow the Status state machine
//   - A driver is assigned if and only if the status is Accepted, Pickup,
//     Transit, Delivered or Completed
//   - Each lifecycle timestamp is set exactly when its status is reached
//     (acceptedAt is cleared again when a stale claim is reopened)
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the human-readable business key, assigned at creation
	orderNumber string

	// shipperID references the shipper who posted the order
	shipperID kernel.UUID

	// driverID is the claiming driver's ID (nil until claimed)
	driverID *kernel.UUID

	// pickup and dropoff are the route endpoints
	pickup  kernel.GeoPoint
	dropoff kernel.GeoPoint

	// weightKg is the cargo weight (must be positive)
	weightKg float64

	// vehicleType is the vehicle class required to carry the cargo
	vehicleType VehicleType

	// description is free-form cargo detail
	description string

	// estimatedPrice is the quoted price at creation, in minor currency units
	estimatedPrice int64

	// finalPrice is the settled price, set only at completion
	finalPrice *int64

	// paymentMethod is how the shipper settles the price
	paymentMethod PaymentMethod

	// rating is the shipper's score for the delivery, set only at completion
	rating *int

	// status represents the current state in the order lifecycle
	status Status

	// lifecycle timestamps, each nil until its transition occurs
	createdAt   time.Time
	acceptedAt  *time.Time
	pickupAt    *time.Time
	transitAt   *time.Time
	deliveredAt *time.Time
	completedAt *time.Time
	cancelledAt *time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - orderNumber: human-readable business key (must be non-empty)
//   - shipperID: the posting shipper (must be a valid UUID)
//   - pickup, dropoff: validated route endpoints
//   - weightKg: cargo weight (must be positive)
//   - vehicleType: required vehicle class
//   - description: free-form cargo detail (may be empty)
//   - estimatedPrice: quoted price in minor currency units (must be positive)
//   - paymentMethod: settlement method
//   - createdAt: posting time (must be non-zero)
//
// Returns the created order or a joined validation error listing every
// invalid field.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	shipperID kernel.UUID,
	pickup kernel.GeoPoint,
	dropoff kernel.GeoPoint,
	weightKg float64,
	vehicleType VehicleType,
	description string,
	estimatedPrice int64,
	paymentMethod PaymentMethod,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setShipperID(shipperID),
		order.setRoute(pickup, dropoff),
		order.setWeightKg(weightKg),
		order.setVehicleType(vehicleType),
		order.setEstimatedPrice(estimatedPrice),
		order.setPaymentMethod(paymentMethod),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts the full persisted state, including status,
// driver assignment, pricing outcome and lifecycle timestamps, and verifies
// the status/driver consistency invariant before returning.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	shipperID kernel.UUID,
	driverID *kernel.UUID,
	pickup kernel.GeoPoint,
	dropoff kernel.GeoPoint,
	weightKg float64,
	vehicleType VehicleType,
	description string,
	estimatedPrice int64,
	finalPrice *int64,
	paymentMethod PaymentMethod,
	rating *int,
	status Status,
	createdAt time.Time,
	acceptedAt, pickupAt, transitAt, deliveredAt, completedAt, cancelledAt *time.Time,
) (*Order, error) {
	order := &Order{
		status:        status,
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setShipperID(shipperID),
		order.setRoute(pickup, dropoff),
		order.setWeightKg(weightKg),
		order.setVehicleType(vehicleType),
		order.setEstimatedPrice(estimatedPrice),
		order.setPaymentMethod(paymentMethod),
		order.setCreatedAt(createdAt),
		status.Validate(),
		status.ValidateCanHaveDriver(driverID != nil),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		id := *driverID
		order.driverID = &id
	}

	if rating != nil {
		if err := validateRating(*rating); err != nil {
			return nil, err
		}
		r := *rating
		order.rating = &r
	}

	if finalPrice != nil {
		if *finalPrice <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("finalPrice",
				fmt.Errorf("%d is not greater than 0", *finalPrice))
		}
		p := *finalPrice
		order.finalPrice = &p
	}

	order.acceptedAt = copyTime(acceptedAt)
	order.pickupAt = copyTime(pickupAt)
	order.transitAt = copyTime(transitAt)
	order.deliveredAt = copyTime(deliveredAt)
	order.completedAt = copyTime(completedAt)
	order.cancelledAt = copyTime(cancelledAt)

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable business key.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Shipper returns the posting shipper's ID.
func (o *Order) Shipper() kernel.UUID {
	return o.shipperID
}

// Driver returns the claiming driver's ID, or nil if the order is unclaimed.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Pickup returns the pickup location.
func (o *Order) Pickup() kernel.GeoPoint {
	return o.pickup
}

// Dropoff returns the dropoff location.
func (o *Order) Dropoff() kernel.GeoPoint {
	return o.dropoff
}

// WeightKg returns the cargo weight in kilograms.
func (o *Order) WeightKg() float64 {
	return o.weightKg
}

// VehicleType returns the required vehicle class.
func (o *Order) VehicleType() VehicleType {
	return o.vehicleType
}

// Description returns the free-form cargo detail.
func (o *Order) Description() string {
	return o.description
}

// EstimatedPrice returns the quoted price in minor currency units.
func (o *Order) EstimatedPrice() int64 {
	return o.estimatedPrice
}

// FinalPrice returns the settled price, or nil before completion.
func (o *Order) FinalPrice() *int64 {
	return o.finalPrice
}

// PaymentMethod returns the settlement method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Rating returns the shipper's score for the delivery, or nil if not rated.
func (o *Order) Rating() *int {
	return o.rating
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the posting time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AcceptedAt returns when the order was claimed, or nil.
func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// PickupAt returns when the cargo was collected, or nil.
func (o *Order) PickupAt() *time.Time {
	return o.pickupAt
}

// TransitAt returns when transit started, or nil.
func (o *Order) TransitAt() *time.Time {
	return o.transitAt
}

// DeliveredAt returns when delivery was reported, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CompletedAt returns when the shipper confirmed delivery, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// Claim assigns the order to a driver and transitions the status to Accepted.
//
// Business rules:
//   - The driver ID must be valid
//   - The order must be Pending; any other status returns ErrAlreadyClaimed
//
// Note that Claim alone does not make a concurrent claim safe: the
// persistence layer must write the transition conditionally on the stored
// status still being Pending (see ports.OrderRepository.UpdateIfPending).
func (o *Order) Claim(driverID kernel.UUID, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	o.acceptedAt = &at
	return nil
}

// MarkPickedUp records that the claiming driver collected the cargo.
// Returns ErrNotOwner when called by any driver other than the claimant,
// ErrInvalidTransition unless the order is Accepted.
func (o *Order) MarkPickedUp(driverID kernel.UUID, at time.Time) error {
	if err := o.validateDriverOwner(driverID); err != nil {
		return err
	}

	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.pickupAt = &at
	return nil
}

// MarkInTransit records that the cargo left the pickup point.
// Returns ErrNotOwner when called by any driver other than the claimant,
// ErrInvalidTransition unless the order is Pickup.
func (o *Order) MarkInTransit(driverID kernel.UUID, at time.Time) error {
	if err := o.validateDriverOwner(driverID); err != nil {
		return err
	}

	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.transitAt = &at
	return nil
}

// MarkDelivered records that the driver delivered the cargo.
// Returns ErrNotOwner when called by any driver other than the claimant,
// ErrInvalidTransition unless the order is Transit.
func (o *Order) MarkDelivered(driverID kernel.UUID, at time.Time) error {
	if err := o.validateDriverOwner(driverID); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &at
	return nil
}

// Confirm finalizes the order after the shipper verified delivery.
//
// Business rules:
//   - Only the posting shipper may confirm; others get ErrNotOwner
//   - The order must be Delivered
//   - rating, when given, must be within [RatingMin, RatingMax]
//   - finalPrice defaults to estimatedPrice when not settled earlier
func (o *Order) Confirm(shipperID kernel.UUID, rating *int, at time.Time) error {
	if !o.shipperID.IsEqual(shipperID) {
		return ErrNotOwner
	}

	if rating != nil {
		if err := validateRating(*rating); err != nil {
			return err
		}
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.completedAt = &at
	if rating != nil {
		r := *rating
		o.rating = &r
	}
	if o.finalPrice == nil {
		price := o.estimatedPrice
		o.finalPrice = &price
	}
	return nil
}

// Cancel withdraws the order before pickup and transitions it to Cancelled.
// The driver reference, if any, is cleared to preserve the status/driver invariant.
func (o *Order) Cancel(at time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = nil
	o.cancelledAt = &at
	return nil
}

// Reopen returns a claimed-but-not-picked-up order to the available pool.
// The driver reference and acceptance timestamp are cleared so the order
// is indistinguishable from a freshly posted one.
func (o *Order) Reopen() error {
	newStatus, err := o.status.Reopen()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = nil
	o.acceptedAt = nil
	return nil
}

// validateDriverOwner checks that driverID is the claiming driver.
func (o *Order) validateDriverOwner(driverID kernel.UUID) error {
	if o.driverID == nil || !o.driverID.IsEqual(driverID) {
		return ErrNotOwner
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if strings.TrimSpace(orderNumber) == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}
	o.shipperID = shipperID
	return nil
}

func (o *Order) setRoute(pickup, dropoff kernel.GeoPoint) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	if err := dropoff.Validate(); err != nil {
		return err
	}
	o.pickup = pickup
	o.dropoff = dropoff
	return nil
}

func (o *Order) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%v is not greater than 0", weightKg))
	}
	o.weightKg = weightKg
	return nil
}

func (o *Order) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	o.vehicleType = vehicleType
	return nil
}

func (o *Order) setEstimatedPrice(estimatedPrice int64) error {
	if estimatedPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedPrice",
			fmt.Errorf("%d is not greater than 0", estimatedPrice))
	}
	o.estimatedPrice = estimatedPrice
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func validateRating(rating int) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
