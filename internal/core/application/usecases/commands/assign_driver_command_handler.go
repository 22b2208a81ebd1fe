package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// AssignDriverCommandHandler assigns a chosen driver to a chosen order.
//
// The order write is conditional on the pending status, so of two concurrent
// assignments for the same order exactly one commits; the loser gets a
// conflict. The driver is marked busy in the same transaction, which closes
// the window where an assigned order could coexist with an available driver.
//
// A missing driver is reported as not found. A missing or already-assigned
// order is reported as a conflict; the two causes are intentionally collapsed
// because the conditional write cannot tell them apart.
type AssignDriverCommandHandler struct {
	uowFactory AssignmentUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAssignDriverCommandHandler creates a handler for explicit driver
// assignment.
func NewAssignDriverCommandHandler(
	uowFactory AssignmentUoWFactory,
	publisher ports.OrderEventPublisher,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the assignment.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, command AssignDriverCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	assignee, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return err
	}

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewObjectConflictErrorWithCause("order", command.OrderID().String(), err)
	}
	if err != nil {
		return err
	}

	if err = aggregate.Assign(assignee.ID(), assignee.Name(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.UpdateIfStatus(ctx, aggregate, order.StatusPending); err != nil {
		return err
	}

	if err = assignee.MarkBusy(aggregate.ID()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, assignee); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderEvent(ctx, h.publisher, aggregate)
	return nil
}
