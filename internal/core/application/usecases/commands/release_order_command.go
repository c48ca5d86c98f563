package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var ErrReleaseOrderCommandIsNotConstructed = errors.New(
	"ReleaseOrderCommand must be created via NewReleaseOrderCommand constructor",
)

// ReleaseOrderCommand represents a request to release a planned order to
// the shop floor.
type ReleaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleaseOrderCommand creates a command to move an order to released.
func NewReleaseOrderCommand(orderID kernel.UUID) (ReleaseOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ReleaseOrderCommand{}, err
	}

	return ReleaseOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrReleaseOrderCommandIsNotConstructed)
}

// OrderID returns the order to release.
func (c ReleaseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
