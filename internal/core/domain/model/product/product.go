// Package product provides the Product aggregate: the catalog entry that
// every BOM component, reservation and ledger entry refers to.
//
// A Product has an immutable identity and type; catalog attributes
// (name, stock levels, standard cost) are mutable through validated methods.
package product

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the catalog aggregate root.
//
// Invariants:
//   - identity, SKU, type and unit of measure are fixed at creation
//   - min/max stock levels and the reorder point are expressed in the
//     product's unit of measure
//   - can only be created through NewProduct or RestoreProduct
type Product struct {
	id            kernel.UUID
	sku           string
	name          string
	productType   Type
	unit          kernel.UnitOfMeasure
	minStockLevel kernel.Quantity
	maxStockLevel kernel.Quantity
	reorderPoint  kernel.Quantity
	standardCost  kernel.Money

	isConstructed bool
}

// NewProduct creates a Product with validated attributes. Stock levels and
// the reorder point start at zero in the product's unit.
func NewProduct(
	id kernel.UUID,
	sku string,
	name string,
	productType Type,
	unit kernel.UnitOfMeasure,
	standardCost kernel.Money,
) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setSKU(sku),
		p.setName(name),
		p.setType(productType),
		p.setUnit(unit),
		p.setStandardCost(standardCost),
	); err != nil {
		return nil, err
	}

	p.minStockLevel = kernel.ZeroQuantity(unit)
	p.maxStockLevel = kernel.ZeroQuantity(unit)
	p.reorderPoint = kernel.ZeroQuantity(unit)

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(
	id kernel.UUID,
	sku string,
	name string,
	productType Type,
	unit kernel.UnitOfMeasure,
	minStockLevel kernel.Quantity,
	maxStockLevel kernel.Quantity,
	reorderPoint kernel.Quantity,
	standardCost kernel.Money,
) (*Product, error) {
	p, err := NewProduct(id, sku, name, productType, unit, standardCost)
	if err != nil {
		return nil, err
	}

	if err := p.SetStockLevels(minStockLevel, maxStockLevel, reorderPoint); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// SKU returns the stock-keeping unit code.
func (p *Product) SKU() string {
	return p.sku
}

// Name returns the catalog name.
func (p *Product) Name() string {
	return p.name
}

// Type returns the product classification.
func (p *Product) Type() Type {
	return p.productType
}

// Unit returns the product's unit of measure.
func (p *Product) Unit() kernel.UnitOfMeasure {
	return p.unit
}

// MinStockLevel returns the minimum stock level.
func (p *Product) MinStockLevel() kernel.Quantity {
	return p.minStockLevel
}

// MaxStockLevel returns the maximum stock level.
func (p *Product) MaxStockLevel() kernel.Quantity {
	return p.maxStockLevel
}

// ReorderPoint returns the reorder point.
func (p *Product) ReorderPoint() kernel.Quantity {
	return p.reorderPoint
}

// StandardCost returns the standard unit cost.
func (p *Product) StandardCost() kernel.Money {
	return p.standardCost
}

// Rename updates the catalog name.
func (p *Product) Rename(name string) error {
	return p.setName(name)
}

// SetStockLevels updates min/max stock and the reorder point. All three
// must be non-negative, in the product's unit, with min <= max.
func (p *Product) SetStockLevels(minLevel, maxLevel, reorderPoint kernel.Quantity) error {
	for _, q := range []kernel.Quantity{minLevel, maxLevel, reorderPoint} {
		if !q.Unit().IsEqual(p.unit) {
			return errs.NewValidationError("stock levels must use the product's unit of measure")
		}
		if q.IsNegative() {
			return errs.NewValidationError("stock levels cannot be negative")
		}
	}

	exceeds, err := minLevel.GreaterThan(maxLevel)
	if err != nil {
		return err
	}
	if exceeds && !maxLevel.IsZero() {
		return errs.NewValidationError("min stock level cannot exceed max stock level")
	}

	p.minStockLevel = minLevel
	p.maxStockLevel = maxLevel
	p.reorderPoint = reorderPoint
	return nil
}

// SetStandardCost updates the standard unit cost.
func (p *Product) SetStandardCost(cost kernel.Money) error {
	return p.setStandardCost(cost)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValidationError("product SKU is required")
	}
	p.sku = sku
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValidationError("product name is required")
	}
	p.name = name
	return nil
}

func (p *Product) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	p.productType = t
	return nil
}

func (p *Product) setUnit(unit kernel.UnitOfMeasure) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	p.unit = unit
	return nil
}

func (p *Product) setStandardCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	p.standardCost = cost
	return nil
}
