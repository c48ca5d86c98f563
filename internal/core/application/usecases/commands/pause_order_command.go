package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var ErrPauseOrderCommandIsNotConstructed = errors.New(
	"PauseOrderCommand must be created via NewPauseOrderCommand constructor",
)

// PauseOrderCommand represents a request to halt a running order.
type PauseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPauseOrderCommand creates a command to pause production.
func NewPauseOrderCommand(orderID kernel.UUID) (PauseOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PauseOrderCommand{}, err
	}

	return PauseOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PauseOrderCommand) Validate() error {
	return c.guard.Validate(ErrPauseOrderCommandIsNotConstructed)
}

// OrderID returns the order to pause.
func (c PauseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
