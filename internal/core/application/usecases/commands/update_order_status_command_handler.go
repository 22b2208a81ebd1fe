package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies order status updates. When the
// delivered status is reached and the order carries a driver, the driver is
// released back to available in the same transaction. A driver record that
// has meanwhile vanished is skipped silently so the delivery still completes.
type UpdateOrderStatusCommandHandler struct {
	uowFactory AssignmentUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory AssignmentUoWFactory,
	publisher ports.OrderEventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status update. A missing order surfaces as
// ObjectNotFoundError from the repository.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) error {
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

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(command.Status(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if command.Status() == order.StatusDelivered && aggregate.DriverID() != nil {
		if err = h.releaseDriver(ctx, uow, *aggregate.DriverID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderEvent(ctx, h.publisher, aggregate)
	return nil
}

func (h UpdateOrderStatusCommandHandler) releaseDriver(
	ctx context.Context,
	uow AssignmentUoW,
	driverID kernel.UUID,
) error {
	driverRepo := uow.DriverRepository()

	assignee, err := driverRepo.Get(ctx, driverID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	assignee.Release()
	return driverRepo.Update(ctx, assignee)
}
