package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
	ErrActualQuantityIsInvalid = errors.New("actual quantity cannot be negative")
)

// CompleteOrderCommand represents a request to finish a running order.
//
// actualQuantity optionally overrides the order quantity as the produced
// amount booked into stock; nil books the full order quantity. The actor
// is recorded on the ledger entries the completion writes.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	actualQuantity *decimal.Decimal
	completedBy    string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete a manufacturing order.
func NewCompleteOrderCommand(
	orderID kernel.UUID,
	actualQuantity *decimal.Decimal,
	completedBy string,
) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActualQuantity(actualQuantity),
		cmd.setCompletedBy(completedBy),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the order to complete.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActualQuantity returns the produced quantity override, nil for the order
// quantity.
func (c CompleteOrderCommand) ActualQuantity() *decimal.Decimal {
	return c.actualQuantity
}

// CompletedBy returns the acting user id.
func (c CompleteOrderCommand) CompletedBy() string {
	return c.completedBy
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setActualQuantity(actualQuantity *decimal.Decimal) error {
	if actualQuantity != nil && actualQuantity.IsNegative() {
		return ErrActualQuantityIsInvalid
	}

	c.actualQuantity = actualQuantity
	return nil
}

func (c *CompleteOrderCommand) setCompletedBy(completedBy string) error {
	if completedBy == "" {
		return ErrActorIsRequired
	}

	c.completedBy = completedBy
	return nil
}
