// Package bom provides the BillOfMaterials aggregate: the recipe of
// components and routing operations needed to produce one unit of a product,
// and the explosion logic that turns it into a flat material-requirements
// list for a given order quantity.
package bom

import (
	"errors"
	"fmt"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"
)

// ErrBOMIsNotConstructed is returned when a BillOfMaterials instance was
// not created through a constructor.
var ErrBOMIsNotConstructed = errors.New("BillOfMaterials must be created via NewBillOfMaterials constructor")

// Requirement is one line of an exploded BOM: a component product and the
// total quantity of it required for the order, scrap included.
type Requirement struct {
	ComponentProductID kernel.UUID
	Quantity           kernel.Quantity
}

// BillOfMaterials is the aggregate describing how a product is made.
//
// Invariants:
//   - belongs to exactly one product
//   - component sequences are unique, operation sequences are unique
//   - at most one default+active BOM exists per product; the aggregate
//     exposes the flags, the repository enforces uniqueness at write time
type BillOfMaterials struct {
	id         kernel.UUID
	productID  kernel.UUID
	version    string
	isActive   bool
	isDefault  bool
	components []*Component
	operations []*Operation

	isConstructed bool
}

// NewBillOfMaterials creates a validated BOM. At least one component is
// required; operations may be empty for trivial routings.
func NewBillOfMaterials(
	id kernel.UUID,
	productID kernel.UUID,
	version string,
	components []*Component,
	operations []*Operation,
) (*BillOfMaterials, error) {
	b := &BillOfMaterials{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setProductID(productID),
		b.setVersion(version),
		b.setComponents(components),
		b.setOperations(operations),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBillOfMaterials reconstructs a BOM from persistence.
func RestoreBillOfMaterials(
	id kernel.UUID,
	productID kernel.UUID,
	version string,
	isActive bool,
	isDefault bool,
	components []*Component,
	operations []*Operation,
) (*BillOfMaterials, error) {
	b, err := NewBillOfMaterials(id, productID, version, components, operations)
	if err != nil {
		return nil, err
	}

	b.isActive = isActive
	b.isDefault = isDefault
	return b, nil
}

// Validate ensures the BOM was created through a constructor.
func (b *BillOfMaterials) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBOMIsNotConstructed
	}
	return nil
}

// IsEqual compares two BOMs by identity.
func (b *BillOfMaterials) IsEqual(other *BillOfMaterials) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the BOM's unique identifier.
func (b *BillOfMaterials) ID() kernel.UUID {
	return b.id
}

// ProductID returns the product this BOM produces.
func (b *BillOfMaterials) ProductID() kernel.UUID {
	return b.productID
}

// Version returns the BOM version string.
func (b *BillOfMaterials) Version() string {
	return b.version
}

// IsActive reports whether the BOM may be bound to new orders.
func (b *BillOfMaterials) IsActive() bool {
	return b.isActive
}

// IsDefault reports whether this is the product's default BOM.
func (b *BillOfMaterials) IsDefault() bool {
	return b.isDefault
}

// Components returns the material lines ordered by sequence.
func (b *BillOfMaterials) Components() []*Component {
	return b.components
}

// Operations returns the routing steps ordered by sequence.
func (b *BillOfMaterials) Operations() []*Operation {
	return b.operations
}

// MarkDefault flags this BOM as the product's default. Only an active BOM
// can be the default; the repository clears the flag on any sibling.
func (b *BillOfMaterials) MarkDefault() error {
	if !b.isActive {
		return errs.NewBusinessRuleViolationError("an inactive BOM cannot be the default")
	}
	b.isDefault = true
	return nil
}

// Deactivate retires the BOM. A retired BOM keeps serving orders it is
// already bound to but cannot be bound to new ones, and loses default status.
func (b *BillOfMaterials) Deactivate() {
	b.isActive = false
	b.isDefault = false
}

// Explode computes the material requirements for producing orderQuantity
// units of the BOM's product. For each component the required quantity is
//
//	quantityPerUnit * orderQuantity * (1 + scrapFactor)
//
// rounded half-up to the component unit's declared precision. Components
// are leaf products in this model; there is no recursive expansion.
func (b *BillOfMaterials) Explode(orderQuantity kernel.Quantity) ([]Requirement, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := orderQuantity.Validate(); err != nil {
		return nil, err
	}
	if !orderQuantity.IsPositive() {
		return nil, errs.NewValidationErrorWithCause(
			"order quantity",
			fmt.Errorf("%s is not greater than 0", orderQuantity.Value()),
		)
	}

	requirements := make([]Requirement, 0, len(b.components))
	for _, component := range b.components {
		requirements = append(requirements, Requirement{
			ComponentProductID: component.ComponentProductID(),
			Quantity:           component.RequiredFor(orderQuantity.Value()),
		})
	}

	return requirements, nil
}

func (b *BillOfMaterials) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *BillOfMaterials) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.productID = id
	return nil
}

func (b *BillOfMaterials) setVersion(version string) error {
	if version == "" {
		return errs.NewValidationError("BOM version is required")
	}
	b.version = version
	return nil
}

func (b *BillOfMaterials) setComponents(components []*Component) error {
	if len(components) == 0 {
		return errs.NewValidationError("BOM requires at least one component")
	}

	seen := make(map[int]struct{}, len(components))
	for _, c := range components {
		if err := c.Validate(); err != nil {
			return err
		}
		if _, dup := seen[c.Sequence()]; dup {
			return errs.NewValidationErrorWithCause(
				"component sequence",
				fmt.Errorf("sequence %d appears more than once", c.Sequence()),
			)
		}
		seen[c.Sequence()] = struct{}{}
	}

	b.components = components
	return nil
}

func (b *BillOfMaterials) setOperations(operations []*Operation) error {
	seen := make(map[int]struct{}, len(operations))
	for _, o := range operations {
		if err := o.Validate(); err != nil {
			return err
		}
		if _, dup := seen[o.Sequence()]; dup {
			return errs.NewValidationErrorWithCause(
				"operation sequence",
				fmt.Errorf("sequence %d appears more than once", o.Sequence()),
			)
		}
		seen[o.Sequence()] = struct{}{}
	}

	b.operations = operations
	return nil
}
