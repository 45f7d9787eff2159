package commands

import (
	"context"

	"logipeek/internal/core/domain/model/driver"
)

// RegisterDriverCommandHandler opens a fresh driver profile.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRegisterDriverCommandHandler creates a handler for driver registration.
func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the new profile.
func (h RegisterDriverCommandHandler) Handle(ctx context.Context, command RegisterDriverCommand) (*driver.Profile, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	profile, err := driver.NewProfile(command.DriverID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DriverRepository().Add(ctx, profile); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return profile, nil
}
