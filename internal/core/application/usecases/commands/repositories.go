// Package commands contains the write-side operations of the dispatch system.
// All commands follow one pattern: constructor validation, a unit of work for
// the transactional boundary, and explicit commit.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces scope each handler to exactly the repositories its
// transaction touches.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository bound to the transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides the driver repository bound to the transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// CustomerRepoFactory provides the customer repository bound to the transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// RestaurantRepoFactory provides the restaurant repository bound to the transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// RestaurantUoW manages transactions for restaurant-only operations.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
	}

	// RestaurantUoWFactory creates restaurant unit of work instances.
	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// PlaceOrderUoW manages the order intake transaction, which may create the
	// customer and the restaurant alongside the order itself.
	PlaceOrderUoW interface {
		TxManager
		CustomerRepoFactory
		RestaurantRepoFactory
		OrderRepoFactory
	}

	// PlaceOrderUoWFactory creates order intake unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// AssignmentUoW manages transactions that change an order and its driver
	// together. Keeping both writes in one transaction is what prevents an
	// assigned order from coexisting with a still-available driver.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	// AssignmentUoWFactory creates assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}
)
