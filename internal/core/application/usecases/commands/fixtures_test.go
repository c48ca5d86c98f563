package commands_test

import (
	"testing"
	"time"

	"mes/internal/core/domain/model/bom"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/order"
	"mes/internal/core/domain/model/product"
	"mes/internal/core/domain/model/reservation"
	"mes/internal/core/domain/model/stock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func pcs(t *testing.T) kernel.UnitOfMeasure {
	t.Helper()
	unit, err := kernel.NewUnitOfMeasure("pcs")
	require.NoError(t, err)
	return unit
}

func pcsQty(t *testing.T, value string) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantityFromString(value, pcs(t))
	require.NoError(t, err)
	return q
}

func rawMaterial(t *testing.T, id kernel.UUID) *product.Product {
	t.Helper()
	cost, err := kernel.NewMoney(decimal.NewFromFloat(1.50), "EUR")
	require.NoError(t, err)
	p, err := product.NewProduct(id, "RM-0001", "steel bolt", product.TypeRawMaterial, pcs(t), cost)
	require.NoError(t, err)
	return p
}

func singleComponentBOM(t *testing.T, productID, componentID kernel.UUID, perUnit string) *bom.BillOfMaterials {
	t.Helper()
	component, err := bom.NewComponent(componentID, pcsQty(t, perUnit), decimal.Zero, 1)
	require.NoError(t, err)
	operation, err := bom.NewOperation(kernel.NewUUID(), time.Hour, 1)
	require.NoError(t, err)
	b, err := bom.NewBillOfMaterials(
		kernel.NewUUID(), productID, "v1",
		[]*bom.Component{component}, []*bom.Operation{operation},
	)
	require.NoError(t, err)
	return b
}

func draftOrder(t *testing.T, productID kernel.UUID, quantity string) *order.ManufacturingOrder {
	t.Helper()
	o, err := order.NewManufacturingOrder(
		kernel.NewUUID(), "MO-2026-0001", productID, pcsQty(t, quantity), 1, "planner",
	)
	require.NoError(t, err)
	return o
}

func runningOrder(t *testing.T, productID kernel.UUID, quantity string) *order.ManufacturingOrder {
	t.Helper()
	o := draftOrder(t, productID, quantity)
	w, err := order.NewWorkOrder(kernel.NewUUID(), kernel.NewUUID(), time.Hour, 1, nil)
	require.NoError(t, err)
	require.NoError(t, o.Confirm(kernel.NewUUID(), []*order.WorkOrder{w}))
	require.NoError(t, o.Start(time.Now()))
	require.NoError(t, o.StartWorkOrder(w.ID()))
	require.NoError(t, o.CompleteWorkOrder(w.ID(), time.Hour))
	return o
}

func activeHold(t *testing.T, orderID, productID kernel.UUID, reserved string) *reservation.MaterialReservation {
	t.Helper()
	r, err := reservation.NewMaterialReservation(
		kernel.NewUUID(), orderID, productID, pcsQty(t, reserved), nil,
	)
	require.NoError(t, err)
	return r
}

func ledgerEntry(t *testing.T, productID kernel.UUID, balance string) *stock.Entry {
	t.Helper()
	entry, err := stock.NextEntry(stock.Draft{
		ProductID: productID,
		Type:      stock.TransactionReceipt,
		Quantity:  pcsQty(t, balance),
		CreatedBy: "warehouse",
	}, kernel.ZeroQuantity(pcs(t)), time.Now())
	require.NoError(t, err)
	return entry
}
