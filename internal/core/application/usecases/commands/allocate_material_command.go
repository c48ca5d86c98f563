package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAllocateMaterialCommandIsNotConstructed = errors.New(
	"AllocateMaterialCommand must be created via NewAllocateMaterialCommand constructor",
)

// AllocateMaterialCommand represents a request to consume part of an
// order's reservation hold: the quantity moves from reserved to allocated
// and is issued from the stock ledger.
type AllocateMaterialCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	productID   kernel.UUID
	quantity    decimal.Decimal
	allocatedBy string

	guard guard.ConstructorGuard
}

// NewAllocateMaterialCommand creates a command to allocate reserved material.
func NewAllocateMaterialCommand(
	orderID, productID kernel.UUID,
	quantity decimal.Decimal,
	allocatedBy string,
) (AllocateMaterialCommand, error) {
	cmd := AllocateMaterialCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
		cmd.setAllocatedBy(allocatedBy),
	); err != nil {
		return AllocateMaterialCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AllocateMaterialCommand) Validate() error {
	return c.guard.Validate(ErrAllocateMaterialCommandIsNotConstructed)
}

// OrderID returns the order holding the reservation.
func (c AllocateMaterialCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the reserved product to allocate.
func (c AllocateMaterialCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the numeric quantity to allocate.
func (c AllocateMaterialCommand) Quantity() decimal.Decimal {
	return c.quantity
}

// AllocatedBy returns the acting user id.
func (c AllocateMaterialCommand) AllocatedBy() string {
	return c.allocatedBy
}

func (c *AllocateMaterialCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AllocateMaterialCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AllocateMaterialCommand) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *AllocateMaterialCommand) setAllocatedBy(allocatedBy string) error {
	if allocatedBy == "" {
		return ErrActorIsRequired
	}

	c.allocatedBy = allocatedBy
	return nil
}
