package commands

import (
	"errors"
	"time"

	"logipeek/internal/pkg/errs"
	"logipeek/internal/pkg/guard"
)

var ErrReopenStaleClaimsCommandIsNotConstructed = errors.New(
	"ReopenStaleClaimsCommand must be created via NewReopenStaleClaimsCommand constructor",
)

// ReopenStaleClaimsCommand triggers one run of the expired-pickup sweep:
// return Accepted orders whose driver never collected the cargo within the
// configured window back to the available pool. asOf anchors staleness so a
// run produces the same outcome no matter when it actually executes.
type ReopenStaleClaimsCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewReopenStaleClaimsCommand creates a sweep command anchored at asOf.
func NewReopenStaleClaimsCommand(asOf time.Time) (ReopenStaleClaimsCommand, error) {
	sweepCommand := ReopenStaleClaimsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := sweepCommand.setAsOf(asOf); err != nil {
		return ReopenStaleClaimsCommand{}, err
	}

	return sweepCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReopenStaleClaimsCommandIsNotConstructed if validation fails.
func (c ReopenStaleClaimsCommand) Validate() error {
	return c.guard.Validate(ErrReopenStaleClaimsCommandIsNotConstructed)
}

// AsOf returns the instant the sweep evaluates staleness against.
func (c ReopenStaleClaimsCommand) AsOf() time.Time {
	return c.asOf
}

func (c *ReopenStaleClaimsCommand) setAsOf(asOf time.Time) error {
	if asOf.IsZero() {
		return errs.NewValueIsRequiredError("asOf")
	}

	c.asOf = asOf
	return nil
}
