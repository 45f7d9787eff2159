package commands

import (
	"errors"
	"time"

	"logipeek/internal/pkg/errs"
	"logipeek/internal/pkg/guard"
)

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// ExpirePendingOrdersCommand triggers one run of the expired-pending sweep:
// cancel Pending orders that no driver claimed within the configured window.
// asOf anchors staleness so a run produces the same outcome no matter when
// it actually executes.
type ExpirePendingOrdersCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewExpirePendingOrdersCommand creates a sweep command anchored at asOf.
func NewExpirePendingOrdersCommand(asOf time.Time) (ExpirePendingOrdersCommand, error) {
	sweepCommand := ExpirePendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := sweepCommand.setAsOf(asOf); err != nil {
		return ExpirePendingOrdersCommand{}, err
	}

	return sweepCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpirePendingOrdersCommandIsNotConstructed if validation fails.
func (c ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

// AsOf returns the instant the sweep evaluates staleness against.
func (c ExpirePendingOrdersCommand) AsOf() time.Time {
	return c.asOf
}

func (c *ExpirePendingOrdersCommand) setAsOf(asOf time.Time) error {
	if asOf.IsZero() {
		return errs.NewValueIsRequiredError("asOf")
	}

	c.asOf = asOf
	return nil
}
