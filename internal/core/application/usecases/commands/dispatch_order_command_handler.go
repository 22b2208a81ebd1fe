package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrNoPendingOrders signals that the queue is empty. An expected outcome
	// for the dispatch job, not a failure.
	ErrNoPendingOrders = errors.New("no pending orders")

	// ErrNoAvailableDrivers signals that every driver is busy or offline.
	ErrNoAvailableDrivers = errors.New("no available drivers")
)

// DispatchOrderCommandHandler matches the oldest pending order with the
// first available driver. The order write carries the same pending-status
// guard as the explicit assignment, so a dispatch tick racing a manual
// assignment still produces exactly one winner.
type DispatchOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewDispatchOrderCommandHandler creates a handler for automatic dispatch.
func NewDispatchOrderCommandHandler(
	uowFactory AssignmentUoWFactory,
	publisher ports.OrderEventPublisher,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle performs one dispatch round. Returns ErrNoPendingOrders or
// ErrNoAvailableDrivers when there is nothing to match.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, command DispatchOrderCommand) error {
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

	aggregate, err := orderRepo.GetFirstInPendingStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrders
	}
	if err != nil {
		return err
	}

	assignee, err := driverRepo.GetFirstAvailable(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoAvailableDrivers
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
