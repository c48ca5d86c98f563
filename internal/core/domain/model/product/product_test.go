package product_test

import (
	"testing"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/product"
	"mes/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T) *product.Product {
	t.Helper()

	unit, err := kernel.NewUnitOfMeasure("pcs")
	require.NoError(t, err)
	cost, err := kernel.NewMoney(decimal.NewFromInt(5), "EUR")
	require.NoError(t, err)

	p, err := product.NewProduct(kernel.NewUUID(), "SKU-001", "Steel bracket", product.TypeRawMaterial, unit, cost)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("creates_valid_product", func(t *testing.T) {
		p := newTestProduct(t)

		require.NoError(t, p.Validate())
		assert.Equal(t, "SKU-001", p.SKU())
		assert.Equal(t, product.TypeRawMaterial, p.Type())
		assert.True(t, p.MinStockLevel().IsZero())
	})

	t.Run("rejects_empty_sku", func(t *testing.T) {
		unit, err := kernel.NewUnitOfMeasure("pcs")
		require.NoError(t, err)
		cost, err := kernel.NewMoney(decimal.Zero, "EUR")
		require.NoError(t, err)

		_, err = product.NewProduct(kernel.NewUUID(), "", "Bracket", product.TypeRawMaterial, unit, cost)

		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("rejects_unknown_type", func(t *testing.T) {
		unit, err := kernel.NewUnitOfMeasure("pcs")
		require.NoError(t, err)
		cost, err := kernel.NewMoney(decimal.Zero, "EUR")
		require.NoError(t, err)

		_, err = product.NewProduct(kernel.NewUUID(), "SKU-1", "Bracket", product.TypeUnknown, unit, cost)

		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestProduct_SetStockLevels(t *testing.T) {
	unit, err := kernel.NewUnitOfMeasure("pcs")
	require.NoError(t, err)
	kgUnit, err := kernel.NewUnitOfMeasure("kg")
	require.NoError(t, err)

	qty := func(v int64, u kernel.UnitOfMeasure) kernel.Quantity {
		q, qErr := kernel.NewQuantity(decimal.NewFromInt(v), u)
		require.NoError(t, qErr)
		return q
	}

	t.Run("accepts_consistent_levels", func(t *testing.T) {
		p := newTestProduct(t)

		err := p.SetStockLevels(qty(10, unit), qty(100, unit), qty(20, unit))

		require.NoError(t, err)
		assert.True(t, p.ReorderPoint().IsEqual(qty(20, unit)))
	})

	t.Run("rejects_foreign_unit", func(t *testing.T) {
		p := newTestProduct(t)

		err := p.SetStockLevels(qty(1, kgUnit), qty(2, unit), qty(1, unit))

		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("rejects_min_above_max", func(t *testing.T) {
		p := newTestProduct(t)

		err := p.SetStockLevels(qty(50, unit), qty(10, unit), qty(5, unit))

		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var p product.Product

		assert.Equal(t, product.ErrProductIsNotConstructed, p.Validate())
	})
}
