package commands

import (
	"errors"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var (
	ErrCompleteWorkOrderCommandIsNotConstructed = errors.New(
		"CompleteWorkOrderCommand must be created via NewCompleteWorkOrderCommand constructor",
	)
	ErrActualDurationIsInvalid = errors.New("actual duration cannot be negative")
)

// CompleteWorkOrderCommand represents a request to finish a routing step,
// recording how long it actually took.
type CompleteWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	workOrderID    kernel.UUID
	actualDuration time.Duration

	guard guard.ConstructorGuard
}

// NewCompleteWorkOrderCommand creates a command to complete a work order.
func NewCompleteWorkOrderCommand(
	orderID, workOrderID kernel.UUID,
	actualDuration time.Duration,
) (CompleteWorkOrderCommand, error) {
	cmd := CompleteWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setWorkOrderID(workOrderID),
		cmd.setActualDuration(actualDuration),
	); err != nil {
		return CompleteWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteWorkOrderCommandIsNotConstructed)
}

// OrderID returns the owning order.
func (c CompleteWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WorkOrderID returns the step to complete.
func (c CompleteWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// ActualDuration returns the recorded duration of the step.
func (c CompleteWorkOrderCommand) ActualDuration() time.Duration {
	return c.actualDuration
}

func (c *CompleteWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteWorkOrderCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}

func (c *CompleteWorkOrderCommand) setActualDuration(d time.Duration) error {
	if d < 0 {
		return ErrActualDurationIsInvalid
	}

	c.actualDuration = d
	return nil
}
