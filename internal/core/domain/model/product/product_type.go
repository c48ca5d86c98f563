package product

import (
	"fmt"

	"mes/internal/pkg/errs"
)

// Type classifies a product's role in manufacturing.
type Type int

const (
	// TypeUnknown represents an invalid or undefined product type.
	TypeUnknown Type = iota

	// TypeRawMaterial is purchased stock consumed by production.
	TypeRawMaterial

	// TypeManufactured is an intermediate product made in-house.
	TypeManufactured

	// TypeFinishedGood is a sellable end product.
	TypeFinishedGood
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:      "unknown",
		TypeRawMaterial:  "raw_material",
		TypeManufactured: "manufactured",
		TypeFinishedGood: "finished_good",
	}
}

// Validate checks that the type is one of the defined classifications.
func (t Type) Validate() error {
	switch t {
	case TypeRawMaterial, TypeManufactured, TypeFinishedGood:
		return nil
	default:
		return errs.NewValidationErrorWithCause(
			"product type",
			fmt.Errorf("%d is not a valid product type", t),
		)
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}
