package commands

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
)

// ChangeDriverStatusCommandHandler applies explicit driver status changes.
type ChangeDriverStatusCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewChangeDriverStatusCommandHandler creates a handler for driver status
// changes.
func NewChangeDriverStatusCommandHandler(uowFactory DriverUoWFactory) ChangeDriverStatusCommandHandler {
	return ChangeDriverStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the driver, overwrites its status, and persists it. A missing
// driver surfaces as ObjectNotFoundError from the repository.
func (h ChangeDriverStatusCommandHandler) Handle(ctx context.Context, command ChangeDriverStatusCommand) (*driver.Driver, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	aggregate, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(command.Status()); err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
