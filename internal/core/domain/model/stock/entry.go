// Package stock provides the append-only stock ledger entry and the balance
// arithmetic around it. The ledger is the source of truth for on-hand
// quantity: entries are never mutated or deleted, corrections are new
// entries, and each entry stores the running balance immediately after it
// so history replay can always reproduce the current balance.
package stock

import (
	"errors"
	"fmt"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not
// created through NextEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NextEntry or RestoreEntry")

// Draft is the input for appending a ledger entry. Quantity is a positive
// magnitude; the sign applied to the balance is derived from Type.
type Draft struct {
	ProductID     kernel.UUID
	WarehouseID   *kernel.UUID
	Type          TransactionType
	Quantity      kernel.Quantity
	ReferenceID   *kernel.UUID
	ReferenceType string
	CreatedBy     string
}

// Entry is one immutable line of the stock ledger.
type Entry struct {
	id             kernel.UUID
	productID      kernel.UUID
	warehouseID    *kernel.UUID
	txType         TransactionType
	quantity       kernel.Quantity
	runningBalance kernel.Quantity
	referenceID    *kernel.UUID
	referenceType  string
	createdBy      string
	occurredAt     time.Time

	isConstructed bool
}

// NextEntry builds the ledger entry that follows previousBalance for the
// drafted transaction. The running balance is
//
//	previousBalance + signedQuantity
//
// where the sign comes from the transaction type. A subtracting entry that
// would drive the balance below zero fails with InsufficientStockError and
// produces no entry; this is the ledger's sole consistency gate.
func NextEntry(draft Draft, previousBalance kernel.Quantity, occurredAt time.Time) (*Entry, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	if err := previousBalance.Validate(); err != nil {
		return nil, err
	}

	var balance kernel.Quantity
	var err error
	if draft.Type.IsInbound() {
		balance, err = previousBalance.Add(draft.Quantity)
	} else {
		balance, err = previousBalance.Sub(draft.Quantity)
	}
	if err != nil {
		return nil, err
	}

	if balance.IsNegative() {
		return nil, errs.NewInsufficientStockError(
			draft.ProductID.String(),
			draft.Quantity.Value(),
			previousBalance.Value(),
		)
	}

	return &Entry{
		id:             kernel.NewUUID(),
		productID:      draft.ProductID,
		warehouseID:    draft.WarehouseID,
		txType:         draft.Type,
		quantity:       draft.Quantity,
		runningBalance: balance,
		referenceID:    draft.ReferenceID,
		referenceType:  draft.ReferenceType,
		createdBy:      draft.CreatedBy,
		occurredAt:     occurredAt,
		isConstructed:  true,
	}, nil
}

// RestoreEntry reconstructs an Entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	productID kernel.UUID,
	warehouseID *kernel.UUID,
	txType TransactionType,
	quantity kernel.Quantity,
	runningBalance kernel.Quantity,
	referenceID *kernel.UUID,
	referenceType string,
	createdBy string,
	occurredAt time.Time,
) (*Entry, error) {
	if err := errors.Join(id.Validate(), productID.Validate(), txType.Validate(),
		quantity.Validate(), runningBalance.Validate()); err != nil {
		return nil, err
	}

	return &Entry{
		id:             id,
		productID:      productID,
		warehouseID:    warehouseID,
		txType:         txType,
		quantity:       quantity,
		runningBalance: runningBalance,
		referenceID:    referenceID,
		referenceType:  referenceType,
		createdBy:      createdBy,
		occurredAt:     occurredAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the entry was created through a constructor.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// ProductID returns the product the entry belongs to.
func (e *Entry) ProductID() kernel.UUID {
	return e.productID
}

// WarehouseID returns the optional warehouse scope, nil when unscoped.
func (e *Entry) WarehouseID() *kernel.UUID {
	return e.warehouseID
}

// Type returns the transaction type.
func (e *Entry) Type() TransactionType {
	return e.txType
}

// Quantity returns the positive magnitude of the movement.
func (e *Entry) Quantity() kernel.Quantity {
	return e.quantity
}

// SignedQuantity returns the movement with the sign the balance saw.
func (e *Entry) SignedQuantity() kernel.Quantity {
	if e.txType.IsInbound() {
		return e.quantity
	}
	return e.quantity.Neg()
}

// RunningBalance returns the balance immediately after this entry.
func (e *Entry) RunningBalance() kernel.Quantity {
	return e.runningBalance
}

// ReferenceID returns the optional reference, e.g. a manufacturing order id.
func (e *Entry) ReferenceID() *kernel.UUID {
	return e.referenceID
}

// ReferenceType returns the kind of the reference, e.g. "manufacturing_order".
func (e *Entry) ReferenceType() string {
	return e.referenceType
}

// CreatedBy returns the acting user recorded for the entry.
func (e *Entry) CreatedBy() string {
	return e.createdBy
}

// OccurredAt returns the append timestamp.
func (e *Entry) OccurredAt() time.Time {
	return e.occurredAt
}

func validateDraft(draft Draft) error {
	if err := errors.Join(
		draft.ProductID.Validate(),
		draft.Type.Validate(),
		draft.Quantity.Validate(),
	); err != nil {
		return err
	}
	if draft.WarehouseID != nil {
		if err := draft.WarehouseID.Validate(); err != nil {
			return err
		}
	}
	if draft.ReferenceID != nil {
		if err := draft.ReferenceID.Validate(); err != nil {
			return err
		}
	}
	if !draft.Quantity.IsPositive() {
		return errs.NewValidationErrorWithCause(
			"ledger quantity",
			fmt.Errorf("%s is not greater than 0", draft.Quantity.Value()),
		)
	}
	if draft.CreatedBy == "" {
		return errs.NewValidationError("ledger entry requires the acting user")
	}
	return nil
}
