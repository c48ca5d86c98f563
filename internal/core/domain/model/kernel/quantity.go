package kernel

import (
	"fmt"

	"mes/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Quantity is an immutable numeric value tagged with a unit of measure.
// All arithmetic validates unit compatibility: adding kilograms to pieces
// is a ValidationError, not a silent coercion.
//
// Operations never mutate the receiver; they return new Quantity values.
type Quantity struct {
	value decimal.Decimal
	unit  UnitOfMeasure
}

// NewQuantity creates a Quantity from a decimal value and a unit.
func NewQuantity(value decimal.Decimal, unit UnitOfMeasure) (Quantity, error) {
	if err := unit.Validate(); err != nil {
		return Quantity{}, err
	}

	return Quantity{value: value, unit: unit}, nil
}

// NewQuantityFromString parses the decimal representation of a quantity.
func NewQuantityFromString(value string, unit UnitOfMeasure) (Quantity, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Quantity{}, errs.NewValidationErrorWithCause("quantity value", err)
	}

	return NewQuantity(d, unit)
}

// ZeroQuantity returns a zero quantity in the given unit.
func ZeroQuantity(unit UnitOfMeasure) Quantity {
	return Quantity{value: decimal.Zero, unit: unit}
}

// Value returns the underlying decimal value.
func (q Quantity) Value() decimal.Decimal {
	return q.value
}

// Unit returns the unit of measure.
func (q Quantity) Unit() UnitOfMeasure {
	return q.unit
}

// Add returns q + other. Fails when the units differ.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if err := q.checkUnit(other); err != nil {
		return Quantity{}, err
	}

	return Quantity{value: q.value.Add(other.value), unit: q.unit}, nil
}

// Sub returns q - other. Fails when the units differ.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	if err := q.checkUnit(other); err != nil {
		return Quantity{}, err
	}

	return Quantity{value: q.value.Sub(other.value), unit: q.unit}, nil
}

// MulScalar returns q scaled by a unitless factor.
func (q Quantity) MulScalar(factor decimal.Decimal) Quantity {
	return Quantity{value: q.value.Mul(factor), unit: q.unit}
}

// Neg returns the quantity with its sign flipped.
func (q Quantity) Neg() Quantity {
	return Quantity{value: q.value.Neg(), unit: q.unit}
}

// Round rounds the value half-up to the unit's declared precision.
func (q Quantity) Round() Quantity {
	return Quantity{value: q.value.Round(q.unit.Precision()), unit: q.unit}
}

// IsNegative reports whether the value is below zero.
func (q Quantity) IsNegative() bool {
	return q.value.IsNegative()
}

// IsPositive reports whether the value is above zero.
func (q Quantity) IsPositive() bool {
	return q.value.IsPositive()
}

// IsZero reports whether the value equals zero.
func (q Quantity) IsZero() bool {
	return q.value.IsZero()
}

// GreaterThan reports q > other for same-unit quantities.
func (q Quantity) GreaterThan(other Quantity) (bool, error) {
	if err := q.checkUnit(other); err != nil {
		return false, err
	}
	return q.value.GreaterThan(other.value), nil
}

// IsEqual compares value and unit.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.unit.IsEqual(other.unit) && q.value.Equal(other.value)
}

// String implements fmt.Stringer, e.g. "26 pcs".
func (q Quantity) String() string {
	return fmt.Sprintf("%s %s", q.value.String(), q.unit.Code())
}

// Validate checks that the quantity carries a constructed unit.
func (q Quantity) Validate() error {
	return q.unit.Validate()
}

func (q Quantity) checkUnit(other Quantity) error {
	if !q.unit.IsEqual(other.unit) {
		return errs.NewValidationErrorWithCause(
			"quantity units are incompatible",
			fmt.Errorf("%q does not match %q", other.unit.Code(), q.unit.Code()),
		)
	}
	return nil
}
