package kernel

import (
	"fmt"

	"mes/internal/pkg/errs"
)

// UnitOfMeasure is a value object identifying the unit a quantity is
// expressed in, together with the decimal precision quantities in that
// unit are rounded to.
//
// The zero value is invalid; construct through NewUnitOfMeasure or use
// one of the predefined units.
type UnitOfMeasure struct {
	code      string
	precision int32
}

// Supported unit codes and their declared precisions.
var unitPrecisions = map[string]int32{
	"pcs": 0,
	"kg":  3,
	"g":   1,
	"l":   3,
	"ml":  0,
	"m":   2,
	"cm":  1,
}

// NewUnitOfMeasure creates a UnitOfMeasure from a known unit code.
// Returns a ValidationError for empty or unknown codes.
func NewUnitOfMeasure(code string) (UnitOfMeasure, error) {
	if code == "" {
		return UnitOfMeasure{}, errs.NewValidationError("unit of measure code is required")
	}
	precision, ok := unitPrecisions[code]
	if !ok {
		return UnitOfMeasure{}, errs.NewValidationErrorWithCause(
			"unit of measure code",
			fmt.Errorf("%q is not a supported unit", code),
		)
	}

	return UnitOfMeasure{code: code, precision: precision}, nil
}

// Code returns the unit code, e.g. "pcs" or "kg".
func (u UnitOfMeasure) Code() string {
	return u.code
}

// Precision returns the number of decimal places quantities in this
// unit are rounded to.
func (u UnitOfMeasure) Precision() int32 {
	return u.precision
}

// IsEqual compares two units by code.
func (u UnitOfMeasure) IsEqual(other UnitOfMeasure) bool {
	return u.code == other.code
}

// String implements fmt.Stringer.
func (u UnitOfMeasure) String() string {
	return u.code
}

// Validate checks that the unit was constructed through NewUnitOfMeasure.
func (u UnitOfMeasure) Validate() error {
	if u.code == "" {
		return errs.NewValidationError("unit of measure must be created via NewUnitOfMeasure")
	}
	return nil
}
