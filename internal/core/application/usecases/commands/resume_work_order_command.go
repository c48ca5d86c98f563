package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var ErrResumeWorkOrderCommandIsNotConstructed = errors.New(
	"ResumeWorkOrderCommand must be created via NewResumeWorkOrderCommand constructor",
)

// ResumeWorkOrderCommand represents a request to continue a paused routing
// step.
type ResumeWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResumeWorkOrderCommand creates a command to resume a work order.
func NewResumeWorkOrderCommand(orderID, workOrderID kernel.UUID) (ResumeWorkOrderCommand, error) {
	cmd := ResumeWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setWorkOrderID(workOrderID),
	); err != nil {
		return ResumeWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrResumeWorkOrderCommandIsNotConstructed)
}

// OrderID returns the owning order.
func (c ResumeWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WorkOrderID returns the step to resume.
func (c ResumeWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

func (c *ResumeWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ResumeWorkOrderCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}
