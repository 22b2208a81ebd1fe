package commands

import (
	"context"

	"dispatch/internal/core/domain/model/restaurant"
)

// CreateRestaurantCommandHandler persists explicitly registered restaurants.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant
// registration.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the restaurant aggregate and persists it.
func (h CreateRestaurantCommandHandler) Handle(ctx context.Context, command CreateRestaurantCommand) (*restaurant.Restaurant, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := restaurant.NewRestaurant(
		command.RestaurantID(),
		command.Name(),
		command.Address(),
		command.Phone(),
		command.CuisineType(),
	)
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

	if err = uow.RestaurantRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
