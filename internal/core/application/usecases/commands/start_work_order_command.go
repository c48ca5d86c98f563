package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var ErrStartWorkOrderCommandIsNotConstructed = errors.New(
	"StartWorkOrderCommand must be created via NewStartWorkOrderCommand constructor",
)

// StartWorkOrderCommand represents a request to start a routing step of an
// order. The step may only start once all its dependencies completed.
type StartWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartWorkOrderCommand creates a command to start a work order.
func NewStartWorkOrderCommand(orderID, workOrderID kernel.UUID) (StartWorkOrderCommand, error) {
	cmd := StartWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setWorkOrderID(workOrderID),
	); err != nil {
		return StartWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartWorkOrderCommandIsNotConstructed)
}

// OrderID returns the owning order.
func (c StartWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WorkOrderID returns the step to start.
func (c StartWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

func (c *StartWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartWorkOrderCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}
