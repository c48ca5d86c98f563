package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var ErrPauseWorkOrderCommandIsNotConstructed = errors.New(
	"PauseWorkOrderCommand must be created via NewPauseWorkOrderCommand constructor",
)

// PauseWorkOrderCommand represents a request to halt a running routing step.
type PauseWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPauseWorkOrderCommand creates a command to pause a work order.
func NewPauseWorkOrderCommand(orderID, workOrderID kernel.UUID) (PauseWorkOrderCommand, error) {
	cmd := PauseWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setWorkOrderID(workOrderID),
	); err != nil {
		return PauseWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PauseWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrPauseWorkOrderCommandIsNotConstructed)
}

// OrderID returns the owning order.
func (c PauseWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WorkOrderID returns the step to pause.
func (c PauseWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

func (c *PauseWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PauseWorkOrderCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}
