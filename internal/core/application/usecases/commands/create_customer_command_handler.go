package commands

import (
	"context"

	"dispatch/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler persists new customer records.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the customer aggregate and persists it. Returns the created
// customer so the transport can render the full record.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context, command CreateCustomerCommand) (*customer.Customer, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := customer.NewCustomer(
		command.CustomerID(),
		command.Name(),
		command.Phone(),
		command.Address(),
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

	if err = uow.CustomerRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
