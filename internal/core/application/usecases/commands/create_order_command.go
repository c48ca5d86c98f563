package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
	ErrPriorityIsInvalid     = errors.New("priority cannot be negative")
	ErrActorIsRequired       = errors.New("acting user id is required")
)

// CreateOrderCommand represents a request to register a new manufacturing
// order in draft status. The quantity carries only the numeric value; the
// unit of measure comes from the ordered product.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "MO-2026-0001", productID, decimal.NewFromInt(10), 5, "planner")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	number    string
	productID kernel.UUID
	quantity  decimal.Decimal
	priority  int
	createdBy string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new manufacturing order.
// Validates ids, requires a non-empty number and actor, a positive quantity
// and a non-negative priority.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	number string,
	productID kernel.UUID,
	quantity decimal.Decimal,
	priority int,
	createdBy string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNumber(number),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
		cmd.setPriority(priority),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Number returns the unique order reference number.
func (c CreateOrderCommand) Number() string {
	return c.number
}

// ProductID returns the product to manufacture.
func (c CreateOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the numeric quantity to produce.
func (c CreateOrderCommand) Quantity() decimal.Decimal {
	return c.quantity
}

// Priority returns the scheduling priority.
func (c CreateOrderCommand) Priority() int {
	return c.priority
}

// CreatedBy returns the acting user id.
func (c CreateOrderCommand) CreatedBy() string {
	return c.createdBy
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setNumber(number string) error {
	if number == "" {
		return ErrOrderNumberIsRequired
	}

	c.number = number
	return nil
}

func (c *CreateOrderCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setPriority(priority int) error {
	if priority < 0 {
		return ErrPriorityIsInvalid
	}

	c.priority = priority
	return nil
}

func (c *CreateOrderCommand) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return ErrActorIsRequired
	}

	c.createdBy = createdBy
	return nil
}
