package services_test

import (
	"testing"

	"mes/internal/core/domain/model/bom"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/order"
	"mes/internal/core/domain/model/reservation"
	"mes/internal/core/domain/services"
	"mes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pieces(t *testing.T, value string) kernel.Quantity {
	t.Helper()
	unit, err := kernel.NewUnitOfMeasure("pcs")
	require.NoError(t, err)
	q, err := kernel.NewQuantityFromString(value, unit)
	require.NoError(t, err)
	return q
}

func requirement(t *testing.T, productID kernel.UUID, qty string) bom.Requirement {
	t.Helper()
	return bom.Requirement{ComponentProductID: productID, Quantity: pieces(t, qty)}
}

func draftOrder(t *testing.T) *order.ManufacturingOrder {
	t.Helper()
	o, err := order.NewManufacturingOrder(
		kernel.NewUUID(), "MO-2026-0100", kernel.NewUUID(), pieces(t, "10"), 1, "planner",
	)
	require.NoError(t, err)
	return o
}

func TestStockReserver_Reserve(t *testing.T) {
	reserver := services.NewStockReserver()

	t.Run("creates_holds_when_everything_is_covered", func(t *testing.T) {
		o := draftOrder(t)
		bolt := kernel.NewUUID()
		plate := kernel.NewUUID()

		holds, err := reserver.Reserve(
			o,
			[]bom.Requirement{requirement(t, bolt, "40"), requirement(t, plate, "8")},
			map[kernel.UUID]services.Availability{
				bolt:  {OnHand: pieces(t, "100"), Reserved: pieces(t, "40")},
				plate: {OnHand: pieces(t, "8"), Reserved: pieces(t, "0")},
			},
			nil, nil,
		)

		require.NoError(t, err)
		require.Len(t, holds, 2)
		assert.True(t, holds[0].ReservedQuantity().IsEqual(pieces(t, "40")))
		assert.True(t, holds[0].OrderID().IsEqual(o.ID()))
		assert.True(t, holds[1].ReservedQuantity().IsEqual(pieces(t, "8")))
	})

	t.Run("one_shortage_fails_the_whole_set", func(t *testing.T) {
		o := draftOrder(t)
		bolt := kernel.NewUUID()
		plate := kernel.NewUUID()

		_, err := reserver.Reserve(
			o,
			[]bom.Requirement{requirement(t, bolt, "40"), requirement(t, plate, "70")},
			map[kernel.UUID]services.Availability{
				bolt:  {OnHand: pieces(t, "100"), Reserved: pieces(t, "0")},
				plate: {OnHand: pieces(t, "100"), Reserved: pieces(t, "40")},
			},
			nil, nil,
		)

		require.ErrorIs(t, err, errs.ErrInsufficientStock)

		var insufficientErr *errs.InsufficientStockError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, plate.String(), insufficientErr.ProductID)
		assert.Equal(t, "70", insufficientErr.Requested.String())
		assert.Equal(t, "60", insufficientErr.Available.String())
	})

	t.Run("other_orders_holds_shrink_availability", func(t *testing.T) {
		o := draftOrder(t)
		bolt := kernel.NewUUID()

		_, err := reserver.Reserve(
			o,
			[]bom.Requirement{requirement(t, bolt, "61")},
			map[kernel.UUID]services.Availability{
				bolt: {OnHand: pieces(t, "100"), Reserved: pieces(t, "40")},
			},
			nil, nil,
		)

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
	})

	t.Run("re_reserves_the_orders_own_active_hold", func(t *testing.T) {
		o := draftOrder(t)
		bolt := kernel.NewUUID()
		hold, err := reservation.NewMaterialReservation(
			kernel.NewUUID(), o.ID(), bolt, pieces(t, "25"), nil,
		)
		require.NoError(t, err)

		holds, err := reserver.Reserve(
			o,
			[]bom.Requirement{requirement(t, bolt, "40")},
			map[kernel.UUID]services.Availability{
				bolt: {OnHand: pieces(t, "50"), Reserved: pieces(t, "0")},
			},
			[]*reservation.MaterialReservation{hold}, nil,
		)

		require.NoError(t, err)
		require.Len(t, holds, 1)
		assert.True(t, holds[0].ID().IsEqual(hold.ID()))
		assert.True(t, holds[0].ReservedQuantity().IsEqual(pieces(t, "40")))
	})

	t.Run("duplicate_component_lines_merge_into_one_hold", func(t *testing.T) {
		o := draftOrder(t)
		bolt := kernel.NewUUID()

		holds, err := reserver.Reserve(
			o,
			[]bom.Requirement{requirement(t, bolt, "20"), requirement(t, bolt, "20")},
			map[kernel.UUID]services.Availability{
				bolt: {OnHand: pieces(t, "60"), Reserved: pieces(t, "0")},
			},
			nil, nil,
		)

		require.NoError(t, err)
		require.Len(t, holds, 1)
		assert.True(t, holds[0].ReservedQuantity().IsEqual(pieces(t, "40")))
	})

	t.Run("duplicate_component_lines_check_availability_combined", func(t *testing.T) {
		o := draftOrder(t)
		bolt := kernel.NewUUID()

		_, err := reserver.Reserve(
			o,
			[]bom.Requirement{requirement(t, bolt, "40"), requirement(t, bolt, "40")},
			map[kernel.UUID]services.Availability{
				bolt: {OnHand: pieces(t, "60"), Reserved: pieces(t, "0")},
			},
			nil, nil,
		)

		require.ErrorIs(t, err, errs.ErrInsufficientStock)

		var insufficientErr *errs.InsufficientStockError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, "80", insufficientErr.Requested.String())
		assert.Equal(t, "60", insufficientErr.Available.String())
	})

	t.Run("mismatched_units_on_availability_fail", func(t *testing.T) {
		o := draftOrder(t)
		bolt := kernel.NewUUID()
		kg, err := kernel.NewUnitOfMeasure("kg")
		require.NoError(t, err)
		onHand, err := kernel.NewQuantityFromString("100", kg)
		require.NoError(t, err)

		_, err = reserver.Reserve(
			o,
			[]bom.Requirement{requirement(t, bolt, "40")},
			map[kernel.UUID]services.Availability{
				bolt: {OnHand: onHand, Reserved: kernel.ZeroQuantity(kg)},
			},
			nil, nil,
		)

		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("missing_availability_entry_fails", func(t *testing.T) {
		o := draftOrder(t)

		_, err := reserver.Reserve(
			o,
			[]bom.Requirement{requirement(t, kernel.NewUUID(), "1")},
			map[kernel.UUID]services.Availability{},
			nil, nil,
		)

		require.ErrorIs(t, err, errs.ErrEntityNotFound)
	})
}
