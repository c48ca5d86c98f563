package bom

import (
	"errors"
	"fmt"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrComponentIsNotConstructed is returned when a Component instance was not
// created through the NewComponent factory.
var ErrComponentIsNotConstructed = errors.New("Component must be created via NewComponent constructor")

// Component is a single material line of a bill of materials: which product
// is consumed, how much of it per unit of output, and the scrap factor
// applied on top of the theoretical quantity.
type Component struct {
	componentProductID kernel.UUID
	quantityPerUnit    kernel.Quantity
	scrapFactor        decimal.Decimal
	sequence           int

	isConstructed bool
}

// NewComponent creates a validated BOM component.
// quantityPerUnit must be positive; scrapFactor must lie in [0, 1];
// sequence must be positive (uniqueness is enforced by the BOM).
func NewComponent(
	componentProductID kernel.UUID,
	quantityPerUnit kernel.Quantity,
	scrapFactor decimal.Decimal,
	sequence int,
) (*Component, error) {
	c := &Component{isConstructed: true}

	if err := errors.Join(
		c.setComponentProductID(componentProductID),
		c.setQuantityPerUnit(quantityPerUnit),
		c.setScrapFactor(scrapFactor),
		c.setSequence(sequence),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the component was created through NewComponent.
func (c *Component) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrComponentIsNotConstructed
	}
	return nil
}

// ComponentProductID returns the consumed product's identifier.
func (c *Component) ComponentProductID() kernel.UUID {
	return c.componentProductID
}

// QuantityPerUnit returns the quantity consumed per unit of output.
func (c *Component) QuantityPerUnit() kernel.Quantity {
	return c.quantityPerUnit
}

// ScrapFactor returns the scrap factor in [0, 1].
func (c *Component) ScrapFactor() decimal.Decimal {
	return c.scrapFactor
}

// Sequence returns the component's position within the BOM.
func (c *Component) Sequence() int {
	return c.sequence
}

// RequiredFor computes the quantity of this component needed to produce
// orderQuantity units of output, scrap included, rounded half-up to the
// component unit's precision.
func (c *Component) RequiredFor(orderQuantity decimal.Decimal) kernel.Quantity {
	gross := c.quantityPerUnit.
		MulScalar(orderQuantity).
		MulScalar(decimal.NewFromInt(1).Add(c.scrapFactor))
	return gross.Round()
}

func (c *Component) setComponentProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.componentProductID = id
	return nil
}

func (c *Component) setQuantityPerUnit(q kernel.Quantity) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if !q.IsPositive() {
		return errs.NewValidationErrorWithCause(
			"component quantity per unit",
			fmt.Errorf("%s is not greater than 0", q.Value()),
		)
	}
	c.quantityPerUnit = q
	return nil
}

func (c *Component) setScrapFactor(f decimal.Decimal) error {
	if f.IsNegative() || f.GreaterThan(decimal.NewFromInt(1)) {
		return errs.NewValidationErrorWithCause(
			"scrap factor",
			fmt.Errorf("%s is outside [0, 1]", f),
		)
	}
	c.scrapFactor = f
	return nil
}

func (c *Component) setSequence(seq int) error {
	if seq <= 0 {
		return errs.NewValidationErrorWithCause(
			"component sequence",
			fmt.Errorf("%d is not greater than 0", seq),
		)
	}
	c.sequence = seq
	return nil
}
