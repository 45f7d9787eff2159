package order

import (
	"fmt"

	"logipeek/internal/pkg/errs"
)

// VehicleType is the class of vehicle required to carry an order's cargo.
type VehicleType string

const (
	VehicleMotorbike VehicleType = "motorbike"
	VehicleVan       VehicleType = "van"
	VehicleTruck     VehicleType = "truck"
)

// Validate checks that the vehicle type is one of the supported classes.
func (v VehicleType) Validate() error {
	switch v {
	case VehicleMotorbike, VehicleVan, VehicleTruck:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("vehicleType",
			fmt.Errorf("%q is not a supported vehicle type", string(v)))
	}
}

// PaymentMethod is how the shipper settles the order price.
// Settlement itself happens outside this system; the method is carried
// on the order for the parties' reference only.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

// Validate checks that the payment method is one of the supported methods.
func (p PaymentMethod) Validate() error {
	switch p {
	case PaymentCash, PaymentTransfer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a supported payment method", string(p)))
	}
}
