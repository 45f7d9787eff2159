package driver

import (
	"fmt"

	"logipeek/internal/pkg/errs"
)

// Availability represents a driver's current working state.
// It is set by the lifecycle engine at claim (Busy) and at completion or
// displacement (Online); drivers toggle Online/Offline themselves.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined availability.
	// This value (0) helps catch uninitialized Availability values.
	AvailabilityUnknown Availability = iota

	// Offline means the driver is not working and must not be assigned orders.
	Offline

	// Online means the driver is working and free to claim orders.
	Online

	// Busy means the driver is carrying a claimed order.
	Busy
)

// getAvailabilityStrings returns a map of Availability values to their string representations.
func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown: "Unknown",
		Offline:             "Offline",
		Online:              "Online",
		Busy:                "Busy",
	}
}

// getValidAvailabilityStrings returns a map of only valid Availability values.
func getValidAvailabilityStrings() map[Availability]string {
	//nolint:exhaustive // AvailabilityUnknown is intentionally excluded as it's invalid
	return map[Availability]string{
		Offline: "Offline",
		Online:  "Online",
		Busy:    "Busy",
	}
}

// Validate checks if the Availability value is valid.
// AvailabilityUnknown (0) and out-of-range values are invalid.
func (a Availability) Validate() error {
	if _, ok := getValidAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

// String returns the human-readable name of the availability.
// It implements the fmt.Stringer interface and is safe to call
// on any Availability value, including invalid ones.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "Unknown"
}
