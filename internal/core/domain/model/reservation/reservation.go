// Package reservation provides the MaterialReservation aggregate: a soft
// hold of component stock on behalf of a manufacturing order. Reserved
// quantity can only shrink or convert into allocated (consumed) quantity;
// it never grows after creation except through the idempotent re-reserve
// operation, which replaces the hold for the same (order, product) pair.
package reservation

import (
	"errors"
	"fmt"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"
)

// ErrReservationIsNotConstructed is returned when a MaterialReservation was
// not created through a constructor.
var ErrReservationIsNotConstructed = errors.New("MaterialReservation must be created via NewMaterialReservation constructor")

// MaterialReservation links a manufacturing order to a component product.
//
// Invariants:
//   - reservedQuantity and allocatedQuantity are never negative
//   - allocation moves quantity from reserved to allocated, one-way
//   - an inactive reservation accepts no further mutation
type MaterialReservation struct {
	id                kernel.UUID
	orderID           kernel.UUID
	productID         kernel.UUID
	reservedQuantity  kernel.Quantity
	allocatedQuantity kernel.Quantity
	isActive          bool
	expiresAt         *time.Time
	version           int

	isConstructed bool
}

// NewMaterialReservation creates an active reservation holding the given
// quantity for the order.
func NewMaterialReservation(
	id kernel.UUID,
	orderID kernel.UUID,
	productID kernel.UUID,
	reserved kernel.Quantity,
	expiresAt *time.Time,
) (*MaterialReservation, error) {
	r := &MaterialReservation{
		isActive:      true,
		isConstructed: true,
		expiresAt:     expiresAt,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setProductID(productID),
		r.setReserved(reserved),
	); err != nil {
		return nil, err
	}

	r.allocatedQuantity = kernel.ZeroQuantity(reserved.Unit())

	return r, nil
}

// RestoreMaterialReservation reconstructs a reservation from persistence.
// Unlike NewMaterialReservation it accepts a zero reserved quantity: a hold
// that was fully allocated or released keeps a zero remainder on record.
func RestoreMaterialReservation(
	id kernel.UUID,
	orderID kernel.UUID,
	productID kernel.UUID,
	reserved kernel.Quantity,
	allocated kernel.Quantity,
	isActive bool,
	expiresAt *time.Time,
	version int,
) (*MaterialReservation, error) {
	r := &MaterialReservation{
		isActive:      isActive,
		isConstructed: true,
		expiresAt:     expiresAt,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setProductID(productID),
		reserved.Validate(),
		allocated.Validate(),
	); err != nil {
		return nil, err
	}
	if reserved.IsNegative() || allocated.IsNegative() {
		return nil, errs.NewValidationError("reservation quantities cannot be negative")
	}

	r.reservedQuantity = reserved
	r.allocatedQuantity = allocated
	r.version = version
	return r, nil
}

// Validate ensures the reservation was created through a constructor.
func (r *MaterialReservation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReservationIsNotConstructed
	}
	return nil
}

// ID returns the reservation's unique identifier.
func (r *MaterialReservation) ID() kernel.UUID {
	return r.id
}

// OrderID returns the owning manufacturing order.
func (r *MaterialReservation) OrderID() kernel.UUID {
	return r.orderID
}

// ProductID returns the reserved component product.
func (r *MaterialReservation) ProductID() kernel.UUID {
	return r.productID
}

// ReservedQuantity returns the soft-held, not yet consumed quantity.
func (r *MaterialReservation) ReservedQuantity() kernel.Quantity {
	return r.reservedQuantity
}

// AllocatedQuantity returns the consumed (issued) quantity.
func (r *MaterialReservation) AllocatedQuantity() kernel.Quantity {
	return r.allocatedQuantity
}

// IsActive reports whether the reservation still holds stock.
func (r *MaterialReservation) IsActive() bool {
	return r.isActive
}

// ExpiresAt returns the optional expiry, nil when the hold does not lapse.
func (r *MaterialReservation) ExpiresAt() *time.Time {
	return r.expiresAt
}

// Version returns the optimistic concurrency version.
func (r *MaterialReservation) Version() int {
	return r.version
}

// IsExpired reports whether the hold lapsed at the given instant.
func (r *MaterialReservation) IsExpired(now time.Time) bool {
	return r.expiresAt != nil && now.After(*r.expiresAt)
}

// ReReserve replaces the reserved quantity with the requested one.
// The call is idempotent for the (order, product) pair: re-reserving the
// same requirement twice leaves the same hold. Availability is validated
// by the caller against the ledger before this is invoked.
func (r *MaterialReservation) ReReserve(quantity kernel.Quantity) error {
	if !r.isActive {
		return errs.NewBusinessRuleViolationError("an inactive reservation cannot be re-reserved")
	}
	return r.setReserved(quantity)
}

// Allocate converts quantity from reserved to allocated. Fails with a
// ValidationError when quantity exceeds the remaining reserved amount.
func (r *MaterialReservation) Allocate(quantity kernel.Quantity) error {
	if !r.isActive {
		return errs.NewBusinessRuleViolationError("an inactive reservation cannot be allocated")
	}
	if err := quantity.Validate(); err != nil {
		return err
	}
	if !quantity.IsPositive() {
		return errs.NewValidationError("allocation quantity must be greater than 0")
	}

	exceeds, err := quantity.GreaterThan(r.reservedQuantity)
	if err != nil {
		return err
	}
	if exceeds {
		return errs.NewValidationErrorWithCause(
			"allocation quantity",
			fmt.Errorf("%s exceeds remaining reserved %s", quantity.Value(), r.reservedQuantity.Value()),
		)
	}

	remaining, err := r.reservedQuantity.Sub(quantity)
	if err != nil {
		return err
	}
	allocated, err := r.allocatedQuantity.Add(quantity)
	if err != nil {
		return err
	}

	r.reservedQuantity = remaining
	r.allocatedQuantity = allocated
	return nil
}

// Release deactivates the reservation, dropping any remaining soft hold.
// Allocated quantity stays recorded for audit. Releasing an already
// inactive reservation is a no-op.
func (r *MaterialReservation) Release() {
	if !r.isActive {
		return
	}
	r.reservedQuantity = kernel.ZeroQuantity(r.reservedQuantity.Unit())
	r.isActive = false
}

func (r *MaterialReservation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *MaterialReservation) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.orderID = id
	return nil
}

func (r *MaterialReservation) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.productID = id
	return nil
}

func (r *MaterialReservation) setReserved(q kernel.Quantity) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if !q.IsPositive() {
		return errs.NewValidationErrorWithCause(
			"reserved quantity",
			fmt.Errorf("%s is not greater than 0", q.Value()),
		)
	}
	r.reservedQuantity = q
	return nil
}
