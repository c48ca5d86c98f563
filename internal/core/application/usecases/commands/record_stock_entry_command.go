package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/stock"
	"mes/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordStockEntryCommandIsNotConstructed = errors.New(
		"RecordStockEntryCommand must be created via NewRecordStockEntryCommand constructor",
	)
	ErrTransactionTypeIsReserved = errors.New(
		"production movements are written by order operations, not recorded directly",
	)
)

// RecordStockEntryCommand represents a request to append a manual movement
// to the stock ledger: goods receipts, issues and inventory adjustments.
// Production movements are excluded; those are written by order
// confirmation and completion.
type RecordStockEntryCommand struct { //nolint:recvcheck //using for validation
	productID       kernel.UUID
	warehouseID     *kernel.UUID
	transactionType stock.TransactionType
	quantity        decimal.Decimal
	createdBy       string

	guard guard.ConstructorGuard
}

// NewRecordStockEntryCommand creates a command to record a stock movement.
func NewRecordStockEntryCommand(
	productID kernel.UUID,
	warehouseID *kernel.UUID,
	transactionType stock.TransactionType,
	quantity decimal.Decimal,
	createdBy string,
) (RecordStockEntryCommand, error) {
	cmd := RecordStockEntryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setWarehouseID(warehouseID),
		cmd.setTransactionType(transactionType),
		cmd.setQuantity(quantity),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return RecordStockEntryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordStockEntryCommand) Validate() error {
	return c.guard.Validate(ErrRecordStockEntryCommandIsNotConstructed)
}

// ProductID returns the product the movement concerns.
func (c RecordStockEntryCommand) ProductID() kernel.UUID {
	return c.productID
}

// WarehouseID returns the optional warehouse of the movement.
func (c RecordStockEntryCommand) WarehouseID() *kernel.UUID {
	return c.warehouseID
}

// TransactionType returns the kind of movement.
func (c RecordStockEntryCommand) TransactionType() stock.TransactionType {
	return c.transactionType
}

// Quantity returns the numeric moved quantity, always positive.
func (c RecordStockEntryCommand) Quantity() decimal.Decimal {
	return c.quantity
}

// CreatedBy returns the acting user id.
func (c RecordStockEntryCommand) CreatedBy() string {
	return c.createdBy
}

func (c *RecordStockEntryCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *RecordStockEntryCommand) setWarehouseID(warehouseID *kernel.UUID) error {
	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return err
		}
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *RecordStockEntryCommand) setTransactionType(t stock.TransactionType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t == stock.TransactionProductionReceipt || t == stock.TransactionProductionIssue {
		return ErrTransactionTypeIsReserved
	}

	c.transactionType = t
	return nil
}

func (c *RecordStockEntryCommand) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *RecordStockEntryCommand) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return ErrActorIsRequired
	}

	c.createdBy = createdBy
	return nil
}
