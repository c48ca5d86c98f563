package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var ErrPlanOrderCommandIsNotConstructed = errors.New(
	"PlanOrderCommand must be created via NewPlanOrderCommand constructor",
)

// PlanOrderCommand represents a request to schedule a confirmed order.
type PlanOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlanOrderCommand creates a command to move an order to planned.
func NewPlanOrderCommand(orderID kernel.UUID) (PlanOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PlanOrderCommand{}, err
	}

	return PlanOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlanOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlanOrderCommandIsNotConstructed)
}

// OrderID returns the order to plan.
func (c PlanOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
