package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/pkg/errs"
)

// PlaceOrderCommandHandler runs the order intake flow: find or create the
// customer by phone, find or create the restaurant by name, then persist the
// pending order. All three writes share one transaction.
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order intake.
func NewPlaceOrderCommandHandler(uowFactory PlaceOrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle places the order and returns the created aggregate. The denormalized
// customer fields on the order come from the request, not from a previously
// stored customer record, so a returning customer can order to a new address
// without touching their record.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) (*order.Order, error) {
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

	cust, err := h.findOrCreateCustomer(ctx, uow, command)
	if err != nil {
		return nil, err
	}

	rest, err := h.findOrCreateRestaurant(ctx, uow, command.RestaurantName())
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		command.OrderID(),
		cust.ID(),
		command.CustomerName(),
		command.CustomerPhone(),
		command.DeliveryAddress(),
		rest.ID(),
		rest.Name(),
		command.Items(),
		command.Notes(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h PlaceOrderCommandHandler) findOrCreateCustomer(
	ctx context.Context,
	uow PlaceOrderUoW,
	command PlaceOrderCommand,
) (*customer.Customer, error) {
	customerRepo := uow.CustomerRepository()

	cust, err := customerRepo.GetByPhone(ctx, command.CustomerPhone())
	if err == nil {
		return cust, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	cust, err = customer.NewCustomer(
		kernel.NewUUID(),
		command.CustomerName(),
		command.CustomerPhone(),
		command.DeliveryAddress(),
	)
	if err != nil {
		return nil, err
	}

	if err = customerRepo.Add(ctx, cust); err != nil {
		return nil, err
	}

	return cust, nil
}

func (h PlaceOrderCommandHandler) findOrCreateRestaurant(
	ctx context.Context,
	uow PlaceOrderUoW,
	name string,
) (*restaurant.Restaurant, error) {
	restaurantRepo := uow.RestaurantRepository()

	rest, err := restaurantRepo.GetByName(ctx, name)
	if err == nil {
		return rest, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	rest, err = restaurant.NewRestaurant(
		kernel.NewUUID(),
		name,
		restaurant.DefaultAddress,
		restaurant.DefaultPhone,
		restaurant.DefaultCuisineType,
	)
	if err != nil {
		return nil, err
	}

	if err = restaurantRepo.Add(ctx, rest); err != nil {
		return nil, err
	}

	return rest, nil
}
