package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand triggers automatic matching of the oldest pending
// order with the longest-available driver. Parameterless; the background
// dispatch job issues one per tick.
type DispatchOrderCommand struct {
	guard kernel.ConstructorGuard
}

// NewDispatchOrderCommand creates a command to trigger automatic dispatch.
func NewDispatchOrderCommand() DispatchOrderCommand {
	return DispatchOrderCommand{
		guard: kernel.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}
