package commands

import (
	"errors"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents a request to confirm a draft order:
// bind a bill of materials, reserve every required material and
// instantiate the routing's work orders.
//
// bomID is optional; when nil the product's default BOM is used.
// reservationTTL is optional; when positive the created holds expire after
// the given duration and are released by the expiry job.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	bomID          *kernel.UUID
	reservationTTL time.Duration

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm a manufacturing order.
func NewConfirmOrderCommand(
	orderID kernel.UUID,
	bomID *kernel.UUID,
	reservationTTL time.Duration,
) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBOMID(bomID),
		cmd.setReservationTTL(reservationTTL),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the order to confirm.
func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BOMID returns the explicitly requested BOM, nil for the product default.
func (c ConfirmOrderCommand) BOMID() *kernel.UUID {
	return c.bomID
}

// ReservationTTL returns the lifetime of the created holds, zero for none.
func (c ConfirmOrderCommand) ReservationTTL() time.Duration {
	return c.reservationTTL
}

func (c *ConfirmOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmOrderCommand) setBOMID(bomID *kernel.UUID) error {
	if bomID != nil {
		if err := bomID.Validate(); err != nil {
			return err
		}
	}

	c.bomID = bomID
	return nil
}

func (c *ConfirmOrderCommand) setReservationTTL(ttl time.Duration) error {
	if ttl < 0 {
		return errors.New("reservation ttl cannot be negative")
	}

	c.reservationTTL = ttl
	return nil
}
