package commands

import (
	"context"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/stock"
)

// RecordStockEntryCommandHandler appends a manual movement to the stock
// ledger. The product's unit of measure qualifies the quantity; the
// running balance chains onto the product's last entry and may never go
// negative.
type RecordStockEntryCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewRecordStockEntryCommandHandler creates a handler for stock movements.
func NewRecordStockEntryCommandHandler(uowFactory LedgerUoWFactory) RecordStockEntryCommandHandler {
	return RecordStockEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock movement command.
// Fails with EntityNotFoundError when the product does not exist and with
// InsufficientStockError when an outbound movement would drive the balance
// below zero.
func (h RecordStockEntryCommandHandler) Handle(ctx context.Context, cmd RecordStockEntryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	prod, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	quantity, err := kernel.NewQuantity(cmd.Quantity(), prod.Unit())
	if err != nil {
		return err
	}

	if err = appendEntry(ctx, uow.LedgerRepository(), stock.Draft{
		ProductID:   cmd.ProductID(),
		WarehouseID: cmd.WarehouseID(),
		Type:        cmd.TransactionType(),
		Quantity:    quantity,
		CreatedBy:   cmd.CreatedBy(),
	}, time.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
