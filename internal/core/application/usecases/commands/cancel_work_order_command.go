package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var ErrCancelWorkOrderCommandIsNotConstructed = errors.New(
	"CancelWorkOrderCommand must be created via NewCancelWorkOrderCommand constructor",
)

// CancelWorkOrderCommand represents a request to abandon a routing step.
type CancelWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelWorkOrderCommand creates a command to cancel a work order.
func NewCancelWorkOrderCommand(orderID, workOrderID kernel.UUID) (CancelWorkOrderCommand, error) {
	cmd := CancelWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setWorkOrderID(workOrderID),
	); err != nil {
		return CancelWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelWorkOrderCommandIsNotConstructed)
}

// OrderID returns the owning order.
func (c CancelWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WorkOrderID returns the step to cancel.
func (c CancelWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

func (c *CancelWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelWorkOrderCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}
